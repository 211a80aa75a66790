package authority

import (
	"math"

	"buyside/internal/core/signal"
)

// Score combines the weighted sub-scores into a single integer in [0,100].
// Every volume-like input is log-saturated into [0,1] before weighting so a
// runaway counter (an agent with 500K followers) cannot dominate the scale;
// doubling an already large input buys strictly less than doubling a small one
func (e *Engine) Score(a signal.Agent) int {
	w := e.weights

	s := float64(w.ReviewQuality) * reviewQuality(a.Reviews)
	s += float64(w.ReviewVolume) * saturate(totalReviews(a.Reviews), w.ReviewVolumeScale)
	s += float64(w.Experience) * saturate(experienceUnits(a), w.ExperienceScale)
	s += float64(w.SocialReach) * saturate(totalOf(a.Social), w.FollowerScale)
	s += float64(w.Completeness) * completeness(a)
	if a.Verified == signal.Verified && a.Claim == signal.Claimed {
		s += float64(w.VerifiedBonus)
	}

	return clampScore(int(math.Round(s)))
}

// saturate maps n onto [0,1] with diminishing returns, hitting 1.0 at scale
func saturate(n, scale int) float64 {
	if n <= 0 || scale <= 0 {
		return 0
	}
	v := math.Log10(float64(n)+1) / math.Log10(float64(scale)+1)
	if v > 1 {
		return 1
	}
	return v
}

// reviewQuality blends per-platform ratings, weighted by review count, into
// [0,1]. Platforms with rating but zero recorded count contribute at weight 1
// so a fresh feed still registers
func reviewQuality(reviews map[string]signal.ReviewSignal) float64 {
	var sum, weight float64
	for _, r := range reviews {
		if r.Rating <= 0 {
			continue
		}
		n := float64(r.Count)
		if n < 1 {
			n = 1
		}
		sum += r.Rating * n
		weight += n
	}
	if weight == 0 {
		return 0
	}
	return (sum / weight) / 5
}

func totalReviews(reviews map[string]signal.ReviewSignal) int {
	total := 0
	for _, r := range reviews {
		total += r.Count
	}
	return total
}

// experienceUnits folds years and transaction volume into one magnitude.
// A year of tenure counts like five purchases
func experienceUnits(a signal.Agent) int {
	return a.YearsExperience*5 + a.PropertiesPurchased
}

func totalOf(social map[string]int) int {
	total := 0
	for _, n := range social {
		total += n
	}
	return total
}

// completeness grants quarter credit per populated narrative field
func completeness(a signal.Agent) float64 {
	filled := 0
	if a.Bio != "" {
		filled++
	}
	if a.FeeStructure != "" {
		filled++
	}
	if len(a.Suburbs) > 0 {
		filled++
	}
	if len(a.Specializations) > 0 {
		filled++
	}
	return float64(filled) / 4
}

// clampScore pins the composite to [0,100] in case a custom weight table
// sums past 100
func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
