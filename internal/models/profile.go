// ABOUTME: UserProfile model for the athlete using the app.
// ABOUTME: Stored as a single object under the profile key.
package models

import "time"

// UserProfile holds the athlete's identity and demographics.
type UserProfile struct {
	Name     string    `json:"name"`
	Age      int       `json:"age"`
	Gender   string    `json:"gender"`
	Region   string    `json:"region"`
	JoinDate time.Time `json:"joinDate"`
}

// NewUserProfile creates a profile with the join date set to now.
func NewUserProfile(name string, age int, gender, region string) *UserProfile {
	return &UserProfile{
		Name:     name,
		Age:      age,
		Gender:   gender,
		Region:   region,
		JoinDate: time.Now(),
	}
}
