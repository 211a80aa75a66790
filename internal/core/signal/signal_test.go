package signal

import (
	"testing"
	"time"
)

func TestNormalize_Defaults(t *testing.T) {
	a := Normalize(map[string]any{})

	if a.Verified != Unverified {
		t.Fatalf("verified default = %q, want unverified", a.Verified)
	}
	if a.Claim != Unclaimed {
		t.Fatalf("claim default = %q, want unclaimed", a.Claim)
	}
	if a.ClaimedAt != nil {
		t.Fatalf("claimed_at should default to nil")
	}
	if a.YearsExperience != 0 || a.PropertiesPurchased != 0 {
		t.Fatalf("counts should default to 0")
	}
	if len(a.Social) != 0 || len(a.Reviews) != 0 {
		t.Fatalf("maps should be empty, got %v / %v", a.Social, a.Reviews)
	}
}

func TestNormalize_CoercesStringsAndFloors(t *testing.T) {
	a := Normalize(map[string]any{
		"years_experience":     "12",
		"properties_purchased": -5,
		"instagram_followers":  "1,250",
		"linkedin_followers":   float64(300),
		"youtube_followers":    "not a number",
	})

	if a.YearsExperience != 12 {
		t.Fatalf("years = %d, want 12", a.YearsExperience)
	}
	if a.PropertiesPurchased != 0 {
		t.Fatalf("negative count should floor to 0, got %d", a.PropertiesPurchased)
	}
	if a.Social["instagram"] != 1250 {
		t.Fatalf("instagram = %d, want 1250", a.Social["instagram"])
	}
	if a.Social["linkedin"] != 300 {
		t.Fatalf("linkedin = %d, want 300", a.Social["linkedin"])
	}
	if _, ok := a.Social["youtube"]; ok {
		t.Fatalf("unparseable count should be dropped, not stored")
	}
}

func TestNormalize_ClampsRatings(t *testing.T) {
	a := Normalize(map[string]any{
		"google_rating":            7.2,
		"google_review_count":      10,
		"trustpilot_rating":        -1.0,
		"trustpilot_review_count":  3,
		"ratemyagent_rating":       "4.8",
		"ratemyagent_review_count": "50",
	})

	if got := a.Reviews["google"].Rating; got != 5 {
		t.Fatalf("google rating clamp = %v, want 5", got)
	}
	if got := a.Reviews["trustpilot"].Rating; got != 0 {
		t.Fatalf("trustpilot rating clamp = %v, want 0", got)
	}
	if got := a.Reviews["ratemyagent"]; got.Rating != 4.8 || got.Count != 50 {
		t.Fatalf("ratemyagent = %+v, want {4.8 50}", got)
	}
}

func TestNormalize_EnumFallbacks(t *testing.T) {
	cases := []struct {
		in   string
		want VerifiedState
	}{
		{"Verified", Verified},
		{"YES", Verified},
		{"pending", Unverified},
		{"", Unverified},
		{"garbage", Unverified},
	}
	for _, tc := range cases {
		a := Normalize(map[string]any{"verified": tc.in})
		if a.Verified != tc.want {
			t.Fatalf("verified(%q) = %q, want %q", tc.in, a.Verified, tc.want)
		}
	}

	if a := Normalize(map[string]any{"profile_status": "Claimed"}); a.Claim != Claimed {
		t.Fatalf("claimed spelling not accepted")
	}
	if a := Normalize(map[string]any{"profile_status": "open"}); a.Claim != Unclaimed {
		t.Fatalf("unknown claim state should fall back to unclaimed")
	}
}

func TestNormalize_ListsAndText(t *testing.T) {
	a := Normalize(map[string]any{
		"suburbs":         "Newtown, Marrickville ,  newtown , ",
		"specializations": []any{"Auctions", "", "Off-market"},
		"bio":             "  Buyer's   agent​ since 2010  ",
	})

	if len(a.Suburbs) != 2 || a.Suburbs[0] != "Newtown" || a.Suburbs[1] != "Marrickville" {
		t.Fatalf("suburbs = %v, want deduped [Newtown Marrickville]", a.Suburbs)
	}
	if len(a.Specializations) != 2 {
		t.Fatalf("specializations = %v", a.Specializations)
	}
	if a.Bio != "Buyer's agent since 2010" {
		t.Fatalf("bio = %q", a.Bio)
	}
}

func TestNormalize_BioAlias(t *testing.T) {
	a := Normalize(map[string]any{"about": "Legacy field"})
	if a.Bio != "Legacy field" {
		t.Fatalf("about alias not honored, bio = %q", a.Bio)
	}
}

func TestNormalize_ClaimedAtForms(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	if a := Normalize(map[string]any{"claimed_at": ts}); a.ClaimedAt == nil || !a.ClaimedAt.Equal(ts) {
		t.Fatalf("time.Time claimed_at = %v", a.ClaimedAt)
	}
	if a := Normalize(map[string]any{"claimed_at": "2024-05-01T10:00:00Z"}); a.ClaimedAt == nil || !a.ClaimedAt.Equal(ts) {
		t.Fatalf("RFC3339 claimed_at = %v", a.ClaimedAt)
	}
	if a := Normalize(map[string]any{"claimed_at": "last tuesday"}); a.ClaimedAt != nil {
		t.Fatalf("unparseable claimed_at should be nil")
	}
	if a := Normalize(map[string]any{"claimed_at": time.Time{}}); a.ClaimedAt != nil {
		t.Fatalf("zero claimed_at should be nil")
	}
}

func TestClean(t *testing.T) {
	if got := Clean("ｆｕｌｌｗｉｄｔｈ"); got != "fullwidth" {
		t.Fatalf("width fold = %q", got)
	}
	if got := Clean("a‍ b\n\tc"); got != "a b c" {
		t.Fatalf("collapse = %q", got)
	}
	if got := Clean(""); got != "" {
		t.Fatalf("empty = %q", got)
	}
}
