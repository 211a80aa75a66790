// Package domain holds DTOs for agents http and service contracts
package domain

// CreateInput creates a new profile; operators submit these in bulk so all
// scoring inputs are optional
type CreateInput struct {
	Name   string `json:"name" validate:"required,min=2,max=120" example:"Jordan Avery"`
	Agency string `json:"agency,omitempty" validate:"omitempty,max=160" example:"Avery Buyer Advocates"`
	Email  string `json:"email,omitempty" validate:"omitempty,email" example:"jordan@avery.example"`

	Bio          string `json:"bio,omitempty" validate:"omitempty,max=4000"`
	FeeStructure string `json:"fee_structure,omitempty" validate:"omitempty,max=2000"`

	Suburbs         []string `json:"suburbs,omitempty" validate:"omitempty,max=50,dive,min=1,max=80"`
	Specializations []string `json:"specializations,omitempty" validate:"omitempty,max=20,dive,min=1,max=80"`

	YearsExperience     int `json:"years_experience,omitempty" validate:"omitempty,min=0,max=80"`
	PropertiesPurchased int `json:"properties_purchased,omitempty" validate:"omitempty,min=0"`

	// map keys must match the platform tables the scoring pipeline iterates,
	// otherwise a stored counter would never reach the derived fields
	Social        map[string]int        `json:"social,omitempty" validate:"omitempty,dive,keys,oneof=facebook instagram linkedin youtube tiktok x pinterest threads,endkeys,min=0"`
	ReviewSignals map[string]ReviewStat `json:"review_signals,omitempty" validate:"omitempty,dive,keys,oneof=ratemyagent google facebook trustpilot productreview,endkeys"`
}

// GetInput fetches one profile
type GetInput struct {
	ID string `json:"id" validate:"required,uuid4" example:"8b42e5d6-0a6a-4f0e-bb0b-0a4e6f9f2c11"`
}

// UpdateInput edits a profile. Pointer fields distinguish "leave unchanged"
// from "set to zero"
type UpdateInput struct {
	ID string `json:"id" validate:"required,uuid4"`

	Name   *string `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Agency *string `json:"agency,omitempty" validate:"omitempty,max=160"`
	Email  *string `json:"email,omitempty" validate:"omitempty,email"`

	Bio          *string `json:"bio,omitempty" validate:"omitempty,max=4000"`
	FeeStructure *string `json:"fee_structure,omitempty" validate:"omitempty,max=2000"`

	Suburbs         *[]string `json:"suburbs,omitempty" validate:"omitempty,max=50,dive,min=1,max=80"`
	Specializations *[]string `json:"specializations,omitempty" validate:"omitempty,max=20,dive,min=1,max=80"`

	YearsExperience     *int `json:"years_experience,omitempty" validate:"omitempty,min=0,max=80"`
	PropertiesPurchased *int `json:"properties_purchased,omitempty" validate:"omitempty,min=0"`

	Social        *map[string]int        `json:"social,omitempty" validate:"omitempty,dive,keys,oneof=facebook instagram linkedin youtube tiktok x pinterest threads,endkeys,min=0"`
	ReviewSignals *map[string]ReviewStat `json:"review_signals,omitempty" validate:"omitempty,dive,keys,oneof=ratemyagent google facebook trustpilot productreview,endkeys"`
}

// ClaimInput marks a profile as claimed by its agent
type ClaimInput struct {
	ID string `json:"id" validate:"required,uuid4"`
}

// VerifyInput toggles operator verification
type VerifyInput struct {
	ID       string `json:"id" validate:"required,uuid4"`
	Verified bool   `json:"verified"`
}

// DirectoryInput filters the public directory listing
type DirectoryInput struct {
	Tier   string `json:"tier,omitempty" validate:"omitempty,oneof=starter established top_rated elite"`
	Suburb string `json:"suburb,omitempty" validate:"omitempty,min=1,max=80"`
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"25"`
}

// DirectoryRow is one public directory entry, ordered by authority score
type DirectoryRow struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Agency         string   `json:"agency,omitempty"`
	Suburbs        []string `json:"suburbs,omitempty"`
	Tier           string   `json:"tier"`
	AuthorityScore int      `json:"authority_score"`
	SocialPresence string   `json:"social_presence"`
	Verified       string   `json:"verified"`
}
