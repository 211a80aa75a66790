package authority

import "buyside/internal/core/signal"

// Tier is the discrete rank bucket shown on directory pages
type Tier string

const (
	// TierStarter is the entry tier
	TierStarter Tier = "starter"
	// TierEstablished marks a working track record
	TierEstablished Tier = "established"
	// TierTopRated marks strong review and transaction signals
	TierTopRated Tier = "top_rated"
	// TierElite is the top tier, reachable only by verified profiles
	TierElite Tier = "elite"
)

// Presence is the qualitative social reach label
type Presence string

const (
	// PresenceNone means no follower counters at all
	PresenceNone Presence = "none"
	// PresenceLight is a token social footprint
	PresenceLight Presence = "light"
	// PresenceModerate is an active audience
	PresenceModerate Presence = "moderate"
	// PresenceStrong is a large audience
	PresenceStrong Presence = "strong"
)

// AggregateFollowers sums every platform counter and assigns the presence
// label from the configured thresholds
func (e *Engine) AggregateFollowers(social map[string]int) (int, Presence) {
	total := totalOf(social)
	switch {
	case total >= e.presence.Strong:
		return total, PresenceStrong
	case total >= e.presence.Moderate:
		return total, PresenceModerate
	case total >= e.presence.Light:
		return total, PresenceLight
	default:
		return total, PresenceNone
	}
}

// ClassifyTier maps a score onto a tier by ascending thresholds.
// An unverified profile cannot reach the top tier regardless of score; it is
// capped one tier below what the raw score would earn
func (e *Engine) ClassifyTier(score int, v signal.VerifiedState) Tier {
	var t Tier
	switch {
	case score >= e.tiers.Elite:
		t = TierElite
	case score >= e.tiers.TopRated:
		t = TierTopRated
	case score >= e.tiers.Established:
		t = TierEstablished
	default:
		t = TierStarter
	}

	if t == TierElite && v != signal.Verified {
		t = TierTopRated
	}
	return t
}
