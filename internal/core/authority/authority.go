// Package authority computes an agent's authority score, rank tier, and
// reconciled profile state from validated signals
// Pipeline order
// 1 aggregate follower counters into a total and presence label
// 2 score weighted saturating sub-scores into [0,100]
// 3 classify the score onto a tier, gated by verification
// 4 reconcile verification/claim state and stamp timestamps
//
// The pipeline is pure: it never reads the wall clock or any external state,
// so the same (agent, now) pair always produces the same patch and the engine
// is safe to share across goroutines
package authority

import (
	"time"

	"buyside/internal/core/signal"
)

// Patch is the derived-field set a caller writes back alongside its own
// changes. The engine never mutates the input record; callers hold the
// authoritative row and apply the patch themselves
type Patch struct {
	TotalFollowers int
	SocialPresence Presence
	AuthorityScore int
	Tier           Tier

	Verified  signal.VerifiedState
	Claim     signal.ClaimState
	ClaimedAt *time.Time

	LastUpdated time.Time
}

// Engine runs the authority pipeline with a fixed configuration
type Engine struct {
	weights  Weights
	tiers    TierThresholds
	presence PresenceThresholds
}

// New creates an Engine with the default configuration
func New() *Engine {
	return NewWithConfig(DefaultWeights(), DefaultTiers(), DefaultPresence())
}

// NewWithConfig creates an Engine with custom tables
func NewWithConfig(w Weights, t TierThresholds, p PresenceThresholds) *Engine {
	return &Engine{weights: w, tiers: t, presence: p}
}

// ComputePatch runs the full pipeline over a validated agent record.
// now is the caller-supplied timestamp used for ClaimedAt backfill and the
// LastUpdated stamp; the engine itself never calls time.Now
func (e *Engine) ComputePatch(a signal.Agent, now time.Time) Patch {
	total, presence := e.AggregateFollowers(a.Social)
	score := e.Score(a)
	tier := e.ClassifyTier(score, a.Verified)
	verified, claim, claimedAt := Reconcile(a.Verified, a.Claim, a.ClaimedAt, now)

	return Patch{
		TotalFollowers: total,
		SocialPresence: presence,
		AuthorityScore: score,
		Tier:           tier,

		Verified:  verified,
		Claim:     claim,
		ClaimedAt: claimedAt,

		LastUpdated: now,
	}
}
