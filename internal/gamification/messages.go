// ABOUTME: Motivational messages keyed by benchmark tier.
// ABOUTME: Deterministic pick so callers and tests get stable output.
package gamification

import "github.com/harperreed/talent/internal/models"

var tierMessages = map[models.Tier][]string{
	models.TierExcellent: {
		"Outstanding performance! You're setting the bar high! 🏆",
		"Incredible result! Keep pushing your limits! 💪",
		"Exceptional work! You're among the best! ⭐",
	},
	models.TierGood: {
		"Great job! You're making solid progress! 👏",
		"Well done! Keep up the good work! 🎯",
		"Nice performance! You're on the right track! 📈",
	},
	models.TierAverage: {
		"Good effort! There's room for improvement! 💪",
		"Keep practicing! Every test makes you stronger! 🎯",
		"Nice try! Focus on technique for better results! 📚",
	},
}

// MotivationalMessage returns a message for the given tier. seq rotates
// through the tier's message pool (callers typically pass the test count);
// unknown tiers fall back to the Average pool.
func MotivationalMessage(tier models.Tier, seq int) string {
	pool, ok := tierMessages[tier]
	if !ok {
		pool = tierMessages[models.TierAverage]
	}
	if seq < 0 {
		seq = -seq
	}
	return pool[seq%len(pool)]
}
