// Package domain defines the types and interfaces for the agents service
package domain

import "time"

// ReviewStat is one third-party platform's rating summary as stored
type ReviewStat struct {
	Rating float64 `json:"rating" validate:"min=0,max=5"`
	Count  int     `json:"count" validate:"min=0"`
}

// Agent is the stored profile row plus its derived fields
type Agent struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Agency string `json:"agency,omitempty"`
	Email  string `json:"email,omitempty"`

	Bio          string `json:"bio,omitempty"`
	FeeStructure string `json:"fee_structure,omitempty"`

	Suburbs         []string `json:"suburbs,omitempty"`
	Specializations []string `json:"specializations,omitempty"`

	YearsExperience     int `json:"years_experience"`
	PropertiesPurchased int `json:"properties_purchased"`

	Social        map[string]int        `json:"social,omitempty"`         // platform -> follower count
	ReviewSignals map[string]ReviewStat `json:"review_signals,omitempty"` // platform -> rating summary

	Verified      string     `json:"verified"`       // verified | unverified
	ProfileStatus string     `json:"profile_status"` // claimed | unclaimed
	ClaimedAt     *time.Time `json:"claimed_at,omitempty"`

	// derived fields, recomputed on every scoring-relevant write
	TotalFollowers int    `json:"total_followers"`
	SocialPresence string `json:"social_presence"`
	AuthorityScore int    `json:"authority_score"`
	Tier           string `json:"tier"`

	LastUpdated time.Time `json:"last_updated"`
	CreatedAt   time.Time `json:"created_at"`
}
