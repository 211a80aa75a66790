// Package trust blends independently-sourced review feeds into a single
// 0-100 confidence score with per-source badges
//
// Callers must pre-filter reviews to eligible ones (approved and not hidden);
// the aggregator trusts the rows it is given and does not re-derive
// eligibility. Like the authority engine it is pure and stateless: no clock,
// no I/O, safe for concurrent use
package trust

import (
	"math"
	"sort"
)

// Source identifies where a review came from
type Source string

const (
	// SourceInternal is the first-party review flow on the marketplace itself
	SourceInternal Source = "internal"
	// SourceRateMyAgent is the flagship third-party feed
	SourceRateMyAgent Source = "ratemyagent"
	// SourceGoogle is Google business reviews
	SourceGoogle Source = "google"
	// SourceFacebook is Facebook page reviews
	SourceFacebook Source = "facebook"
	// SourceTrustpilot is Trustpilot reviews
	SourceTrustpilot Source = "trustpilot"
	// SourceProductReview is ProductReview.com.au reviews
	SourceProductReview Source = "productreview"
)

// Review is one eligible review row
type Review struct {
	Source Source
	Rating float64 // [0,5]

	// TrustWeight overrides the per-source default when > 0
	TrustWeight float64
}

// Badge is the per-source summary shown next to a profile
type Badge struct {
	Source    Source
	Count     int
	AvgRating float64 // source-weighted average
}

// Summary is the blended trust result
type Summary struct {
	Score         int // [0,100]
	Badges        []Badge
	ExternalCount int
	InternalCount int
}

// scoring shape: rating carries most of the weight, volume and source
// diversity add capped bonuses
const (
	ratingWeight   = 70.0
	volumePerLog10 = 10.0
	volumeCap      = 15.0
	perSourceBonus = 4.0
	diversityCap   = 15.0

	externalShare = 0.8
	internalShare = 0.2
)

// Summarize blends external and internal reviews into a Summary.
// Zero eligible reviews of any kind yields the zero Summary with an empty
// badge list; there is no division anywhere a denominator can be zero
func Summarize(external, internal []Review) Summary {
	if len(external) == 0 && len(internal) == 0 {
		return Summary{Badges: []Badge{}}
	}

	bySource := make(map[Source]*accum)
	extOverall := fold(external, bySource)
	intOverall := fold(internal, bySource)

	var rating float64
	switch {
	case extOverall.weight > 0 && intOverall.weight > 0:
		rating = externalShare*extOverall.avg() + internalShare*intOverall.avg()
	case extOverall.weight > 0:
		rating = extOverall.avg()
	default:
		rating = intOverall.avg()
	}

	total := len(external) + len(internal)

	score := ratingWeight * rating / 5
	score += math.Min(volumePerLog10*math.Log10(float64(total)+1), volumeCap)
	score += math.Min(perSourceBonus*float64(len(bySource)), diversityCap)

	return Summary{
		Score:         clamp(int(math.Round(score))),
		Badges:        badges(bySource),
		ExternalCount: len(external),
		InternalCount: len(internal),
	}
}

// accum carries weighted sums for one grouping
type accum struct {
	count  int
	sum    float64 // Σ rating×weight
	weight float64 // Σ weight
}

func (a *accum) add(r Review) {
	w := r.TrustWeight
	if w <= 0 {
		w = defaultWeight(r.Source)
	}
	a.count++
	a.sum += r.Rating * w
	a.weight += w
}

func (a *accum) avg() float64 {
	if a.weight == 0 {
		return 0
	}
	return a.sum / a.weight
}

// fold groups reviews by source while accumulating the category overall
func fold(reviews []Review, bySource map[Source]*accum) accum {
	var overall accum
	for _, r := range reviews {
		overall.add(r)
		g := bySource[r.Source]
		if g == nil {
			g = &accum{}
			bySource[r.Source] = g
		}
		g.add(r)
	}
	return overall
}

// badges orders per-source summaries by count desc, then weighted average
// rating desc, then source name asc. The first two keys are a visible
// contract; the name key keeps equal badges deterministic
func badges(bySource map[Source]*accum) []Badge {
	out := make([]Badge, 0, len(bySource))
	for src, g := range bySource {
		out = append(out, Badge{Source: src, Count: g.count, AvgRating: g.avg()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].AvgRating != out[j].AvgRating {
			return out[i].AvgRating > out[j].AvgRating
		}
		return out[i].Source < out[j].Source
	})
	return out
}

func clamp(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
