// Package signal coerces loosely-typed agent records into validated inputs
// for the scoring pipeline
// Pipeline order
// 1 enum fields validated against their closed sets, conservative fallback
// 2 numeric fields parsed from any upstream representation, floored at 0
// 3 ratings clamped to [0,5]
// 4 free text cleaned via the x/text chain and trimmed
// 5 list fields deduplicated and emptied of blanks
package signal

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// VerifiedState is the closed verification enum
type VerifiedState string

const (
	// Verified means the profile identity has been checked by an operator
	Verified VerifiedState = "verified"
	// Unverified is the conservative default for anything else
	Unverified VerifiedState = "unverified"
)

// ClaimState is the closed profile ownership enum
type ClaimState string

const (
	// Claimed means the agent has taken ownership of the profile
	Claimed ClaimState = "claimed"
	// Unclaimed covers agency-submitted profiles nobody has claimed yet
	Unclaimed ClaimState = "unclaimed"
)

// SocialPlatforms is the set of follower counters carried on a profile.
// The aggregator iterates this table so adding a platform is a one-line change
var SocialPlatforms = []string{
	"facebook",
	"instagram",
	"linkedin",
	"youtube",
	"tiktok",
	"x",
	"pinterest",
	"threads",
}

// ReviewPlatforms is the set of third-party review feeds a profile can carry
var ReviewPlatforms = []string{
	"ratemyagent",
	"google",
	"facebook",
	"trustpilot",
	"productreview",
}

// ReviewSignal is one third-party platform's rating summary
type ReviewSignal struct {
	Rating float64 // clamped to [0,5]
	Count  int     // >= 0
}

// Agent is the validated input record for the authority pipeline.
// Every field is well-formed after Normalize; downstream components never
// re-check ranges
type Agent struct {
	Verified  VerifiedState
	Claim     ClaimState
	ClaimedAt *time.Time

	YearsExperience     int
	PropertiesPurchased int

	Suburbs         []string
	Specializations []string

	Bio          string
	FeeStructure string

	Social  map[string]int          // platform -> follower count
	Reviews map[string]ReviewSignal // platform -> rating summary
}

// Normalize builds a fully-populated Agent from an untyped upstream record.
// It never fails; unparseable values become safe defaults (0, empty, the
// conservative enum value). Callers can hand it raw bulk-upload rows,
// half-filled form payloads, or merged DB rows without pre-validation
func Normalize(raw map[string]any) Agent {
	a := Agent{
		Verified: parseVerified(asString(raw["verified"])),
		Claim:    parseClaim(asString(raw["profile_status"])),

		YearsExperience:     asCount(raw["years_experience"]),
		PropertiesPurchased: asCount(raw["properties_purchased"]),

		Suburbs:         asNames(raw["suburbs"]),
		Specializations: asNames(raw["specializations"]),

		FeeStructure: Clean(asString(raw["fee_structure"])),

		Social:  make(map[string]int, len(SocialPlatforms)),
		Reviews: make(map[string]ReviewSignal, len(ReviewPlatforms)),
	}

	a.ClaimedAt = asTime(raw["claimed_at"])

	// bio with a legacy alias some upstreams still send
	bio := asString(raw["bio"])
	if bio == "" {
		bio = asString(raw["about"])
	}
	a.Bio = Clean(bio)

	for _, p := range SocialPlatforms {
		if n := asCount(raw[p+"_followers"]); n > 0 {
			a.Social[p] = n
		}
	}

	for _, p := range ReviewPlatforms {
		rating := clampRating(asFloat(raw[p+"_rating"]))
		count := asCount(raw[p+"_review_count"])
		if rating > 0 || count > 0 {
			a.Reviews[p] = ReviewSignal{Rating: rating, Count: count}
		}
	}

	return a
}

// ParseVerified maps any upstream spelling onto the closed enum
func ParseVerified(s string) VerifiedState { return parseVerified(s) }

// ParseClaim maps any upstream spelling onto the closed enum
func ParseClaim(s string) ClaimState { return parseClaim(s) }

func parseVerified(s string) VerifiedState {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verified", "true", "yes", "1":
		return Verified
	default:
		return Unverified
	}
}

func parseClaim(s string) ClaimState {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "claimed", "true", "yes", "1":
		return Claimed
	default:
		return Unclaimed
	}
}

func clampRating(r float64) float64 {
	if r != r || r < 0 { // NaN folds to 0
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

// asCount parses a non-negative integer out of whatever the upstream sent
func asCount(v any) int {
	n := asInt(v)
	if n < 0 {
		return 0
	}
	return n
}

func asInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int32:
		return int(t)
	case int64:
		return int(t)
	case float32:
		return int(t)
	case float64:
		return int(t)
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n)
		}
		if f, err := t.Float64(); err == nil {
			return int(f)
		}
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(t, ",", ""))
		if s == "" {
			return 0
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f)
		}
	}
	return 0
}

func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f
		}
	}
	return 0
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	}
	return ""
}

// asNames accepts a []string, []any, or comma-separated string and returns a
// cleaned, deduplicated list preserving first-seen order
func asNames(v any) []string {
	var parts []string
	switch t := v.(type) {
	case []string:
		parts = t
	case []any:
		for _, e := range t {
			parts = append(parts, asString(e))
		}
	case string:
		parts = strings.Split(t, ",")
	default:
		return nil
	}

	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		c := Clean(p)
		if c == "" {
			continue
		}
		key := strings.ToLower(c)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// asTime accepts time.Time, *time.Time, RFC3339 strings, or unix seconds.
// Zero times fold to nil
func asTime(v any) *time.Time {
	switch t := v.(type) {
	case *time.Time:
		if t == nil || t.IsZero() {
			return nil
		}
		u := *t
		return &u
	case time.Time:
		if t.IsZero() {
			return nil
		}
		return &t
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		if ts, err := time.Parse(time.RFC3339, s); err == nil && !ts.IsZero() {
			return &ts
		}
	case int64:
		if t <= 0 {
			return nil
		}
		ts := time.Unix(t, 0).UTC()
		return &ts
	}
	return nil
}
