// ABOUTME: ProgressSnapshot derived from the full result log.
// ABOUTME: Never persisted; recomputed on demand, never partially updated.
package models

// ProgressSnapshot is the derived level/XP view of the result log.
type ProgressSnapshot struct {
	Level        int `json:"level"`
	XP           int `json:"xp"`
	NextLevelXP  int `json:"nextLevelXp"`
	TotalTests   int `json:"totalTests"`
	AverageScore int `json:"averageScore"`
}
