package authority

import (
	"testing"
	"time"

	"buyside/internal/core/signal"
)

var testNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func emptyAgent() signal.Agent {
	return signal.Normalize(map[string]any{})
}

func fullAgent() signal.Agent {
	return signal.Normalize(map[string]any{
		"verified":                 "verified",
		"profile_status":           "claimed",
		"claimed_at":               "2023-01-15T00:00:00Z",
		"years_experience":         15,
		"properties_purchased":     120,
		"suburbs":                  "Paddington, Woollahra",
		"specializations":          "Auctions, Off-market",
		"bio":                      "Twenty years in the eastern suburbs",
		"fee_structure":            "Fixed fee, tiered by budget",
		"instagram_followers":      6000,
		"linkedin_followers":       4000,
		"ratemyagent_rating":       4.8,
		"ratemyagent_review_count": 50,
	})
}

func TestComputePatch_BoundsAndIdempotence(t *testing.T) {
	e := New()

	for name, a := range map[string]signal.Agent{
		"empty": emptyAgent(),
		"full":  fullAgent(),
	} {
		p1 := e.ComputePatch(a, testNow)
		p2 := e.ComputePatch(a, testNow)

		if p1.AuthorityScore < 0 || p1.AuthorityScore > 100 {
			t.Fatalf("%s: score %d out of range", name, p1.AuthorityScore)
		}
		if p1 != p2 && (p1.ClaimedAt == nil || p2.ClaimedAt == nil || !p1.ClaimedAt.Equal(*p2.ClaimedAt)) {
			t.Fatalf("%s: recompute not idempotent: %+v vs %+v", name, p1, p2)
		}
		if p1.AuthorityScore != p2.AuthorityScore || p1.Tier != p2.Tier || p1.TotalFollowers != p2.TotalFollowers {
			t.Fatalf("%s: derived fields drifted across recompute", name)
		}
	}
}

func TestComputePatch_StarterExample(t *testing.T) {
	// 3 years, 5 properties, nothing else: low double digits, starter tier
	a := signal.Normalize(map[string]any{
		"years_experience":     3,
		"properties_purchased": 5,
	})
	p := New().ComputePatch(a, testNow)

	if p.AuthorityScore < 5 || p.AuthorityScore >= 40 {
		t.Fatalf("score = %d, want low double digits", p.AuthorityScore)
	}
	if p.Tier != TierStarter {
		t.Fatalf("tier = %q, want starter", p.Tier)
	}
	if p.SocialPresence != PresenceNone || p.TotalFollowers != 0 {
		t.Fatalf("presence = %q/%d, want none/0", p.SocialPresence, p.TotalFollowers)
	}
}

func TestComputePatch_EliteExample(t *testing.T) {
	p := New().ComputePatch(fullAgent(), testNow)

	if p.AuthorityScore < 85 {
		t.Fatalf("score = %d, want >= 85", p.AuthorityScore)
	}
	if p.Tier != TierElite {
		t.Fatalf("tier = %q, want elite", p.Tier)
	}
	if p.TotalFollowers != 10000 || p.SocialPresence != PresenceStrong {
		t.Fatalf("followers = %d/%q, want 10000/strong", p.TotalFollowers, p.SocialPresence)
	}
	if p.ClaimedAt == nil || !p.ClaimedAt.Equal(time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("claimed_at should pass through unchanged, got %v", p.ClaimedAt)
	}
	if !p.LastUpdated.Equal(testNow) {
		t.Fatalf("last_updated = %v, want injected now", p.LastUpdated)
	}
}

func TestScore_Monotonicity(t *testing.T) {
	e := New()
	base := fullAgent()

	bump := func(mutate func(*signal.Agent)) int {
		a := fullAgent()
		mutate(&a)
		return e.Score(a)
	}

	ref := e.Score(base)
	if got := bump(func(a *signal.Agent) { a.PropertiesPurchased += 40 }); got < ref {
		t.Fatalf("more properties lowered score: %d -> %d", ref, got)
	}
	if got := bump(func(a *signal.Agent) { a.Social["instagram"] += 20000 }); got < ref {
		t.Fatalf("more followers lowered score: %d -> %d", ref, got)
	}
	if got := bump(func(a *signal.Agent) {
		r := a.Reviews["ratemyagent"]
		r.Count += 100
		a.Reviews["ratemyagent"] = r
	}); got < ref {
		t.Fatalf("more reviews lowered score: %d -> %d", ref, got)
	}
}

func TestScore_DiminishingReturns(t *testing.T) {
	e := New()

	withFollowers := func(n int) signal.Agent {
		a := emptyAgent()
		a.Social = map[string]int{"instagram": n}
		return a
	}

	smallGain := e.Score(withFollowers(200)) - e.Score(withFollowers(100))
	largeGain := e.Score(withFollowers(200000)) - e.Score(withFollowers(100000))
	if largeGain >= smallGain {
		t.Fatalf("doubling 100k->200k gained %d, doubling 100->200 gained %d; want strictly less", largeGain, smallGain)
	}
}

func TestClassifyTier_VerificationGate(t *testing.T) {
	e := New()

	if got := e.ClassifyTier(92, signal.Verified); got != TierElite {
		t.Fatalf("verified 92 = %q, want elite", got)
	}
	if got := e.ClassifyTier(92, signal.Unverified); got != TierTopRated {
		t.Fatalf("unverified 92 = %q, want capped at top_rated", got)
	}
	if got := e.ClassifyTier(75, signal.Unverified); got != TierTopRated {
		t.Fatalf("unverified 75 = %q, want top_rated", got)
	}
	if got := e.ClassifyTier(10, signal.Unverified); got != TierStarter {
		t.Fatalf("unverified 10 = %q, want starter", got)
	}
	if got := e.ClassifyTier(40, signal.Verified); got != TierEstablished {
		t.Fatalf("boundary 40 = %q, want established", got)
	}
}

func TestAggregateFollowers_Thresholds(t *testing.T) {
	e := New()
	cases := []struct {
		total int
		want  Presence
	}{
		{0, PresenceNone},
		{1, PresenceLight},
		{999, PresenceLight},
		{1000, PresenceModerate},
		{9999, PresenceModerate},
		{10000, PresenceStrong},
	}
	for _, tc := range cases {
		got, p := e.AggregateFollowers(map[string]int{"facebook": tc.total})
		if got != tc.total || p != tc.want {
			t.Fatalf("followers(%d) = %d/%q, want %d/%q", tc.total, got, p, tc.total, tc.want)
		}
	}
}

func TestReconcile(t *testing.T) {
	old := time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC)

	// unclaimed wipes claimed_at even when the input carried one
	_, c, at := Reconcile(signal.Unverified, signal.Unclaimed, &old, testNow)
	if c != signal.Unclaimed || at != nil {
		t.Fatalf("unclaimed reconcile = %q/%v, want unclaimed/nil", c, at)
	}

	// claimed without a timestamp gets the injected now
	_, c, at = Reconcile(signal.Verified, signal.Claimed, nil, testNow)
	if c != signal.Claimed || at == nil || !at.Equal(testNow) {
		t.Fatalf("claimed backfill = %q/%v", c, at)
	}

	// claimed with a timestamp keeps it
	_, _, at = Reconcile(signal.Verified, signal.Claimed, &old, testNow)
	if at == nil || !at.Equal(old) {
		t.Fatalf("existing claimed_at should survive, got %v", at)
	}

	// unknown enum value falls back to the conservative default
	v, _, _ := Reconcile(signal.VerifiedState("weird"), signal.Claimed, &old, testNow)
	if v != signal.Unverified {
		t.Fatalf("unknown verified state = %q, want unverified", v)
	}
}

func TestScore_WeightedSumNeverExceeds100(t *testing.T) {
	// saturate every input well past its scale
	a := signal.Normalize(map[string]any{
		"verified":                 "verified",
		"profile_status":           "claimed",
		"years_experience":         80,
		"properties_purchased":     5000,
		"suburbs":                  "A,B",
		"specializations":          "C",
		"bio":                      "x",
		"fee_structure":            "y",
		"instagram_followers":      10_000_000,
		"facebook_followers":       10_000_000,
		"ratemyagent_rating":       5.0,
		"ratemyagent_review_count": 100000,
		"google_rating":            5.0,
		"google_review_count":      100000,
	})
	if got := New().Score(a); got != 100 {
		t.Fatalf("maxed agent = %d, want exactly 100", got)
	}
}
