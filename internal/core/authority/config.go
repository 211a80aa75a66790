package authority

// Weights are the percentage contributions of each sub-score plus the
// saturation scales that decide where a volume-like input earns full credit.
// Percentages must sum to 100 so the composite stays inside [0,100]
type Weights struct {
	ReviewQuality int
	ReviewVolume  int
	Experience    int
	SocialReach   int
	Completeness  int
	VerifiedBonus int

	// Saturation scales: the input magnitude that earns a full sub-score.
	// Log scaling means half the scale is worth far more than half the credit
	ReviewVolumeScale int // total review count
	FollowerScale     int // total follower count
	ExperienceScale   int // combined units, see experienceUnits
}

// DefaultWeights returns the production weighting
func DefaultWeights() Weights {
	return Weights{
		ReviewQuality: 30,
		ReviewVolume:  15,
		Experience:    20,
		SocialReach:   15,
		Completeness:  10,
		VerifiedBonus: 10,

		ReviewVolumeScale: 100,
		FollowerScale:     50000,
		ExperienceScale:   150,
	}
}

// TierThresholds are the minimum scores for each tier above Starter
type TierThresholds struct {
	Established int
	TopRated    int
	Elite       int
}

// DefaultTiers returns the production tier cut points
func DefaultTiers() TierThresholds {
	return TierThresholds{Established: 40, TopRated: 70, Elite: 85}
}

// PresenceThresholds are the minimum total follower counts for each social
// presence label above None
type PresenceThresholds struct {
	Light    int
	Moderate int
	Strong   int
}

// DefaultPresence returns the production presence cut points
func DefaultPresence() PresenceThresholds {
	return PresenceThresholds{Light: 1, Moderate: 1000, Strong: 10000}
}
