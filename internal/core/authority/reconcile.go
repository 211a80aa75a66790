package authority

import (
	"time"

	"buyside/internal/core/signal"
)

// Reconcile enforces cross-field consistency between verification, claim
// state, and the claim timestamp
// Rules
// 1 Claimed requires a non-nil ClaimedAt; missing values are filled with now
// 2 Unclaimed forces ClaimedAt to nil regardless of any prior value
// 3 enum values are re-validated so a stale row cannot smuggle in an unknown
//
// It runs last in the pipeline so a caller writing a partial record cannot
// bypass it
func Reconcile(
	v signal.VerifiedState,
	c signal.ClaimState,
	claimedAt *time.Time,
	now time.Time,
) (signal.VerifiedState, signal.ClaimState, *time.Time) {
	if v != signal.Verified {
		v = signal.Unverified
	}
	if c != signal.Claimed {
		c = signal.Unclaimed
	}

	switch c {
	case signal.Claimed:
		if claimedAt == nil || claimedAt.IsZero() {
			ts := now
			claimedAt = &ts
		}
	default:
		claimedAt = nil
	}

	return v, c, claimedAt
}
