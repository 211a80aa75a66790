package trust

// Per-source default confidence weights. The flagship feed anchors at 1.0,
// other third parties scale below it, and first-party/manual sources sit
// lowest. A review-level TrustWeight override beats all of these
var sourceWeights = map[Source]float64{
	SourceRateMyAgent:   1.0,
	SourceGoogle:        0.9,
	SourceTrustpilot:    0.85,
	SourceProductReview: 0.75,
	SourceFacebook:      0.7,
	SourceInternal:      0.5,
}

// unknownSourceWeight covers feeds added upstream before the table learns
// about them
const unknownSourceWeight = 0.6

func defaultWeight(s Source) float64 {
	if w, ok := sourceWeights[s]; ok {
		return w
	}
	return unknownSourceWeight
}

// DefaultWeight exposes the per-source default for moderation views
func DefaultWeight(s Source) float64 { return defaultWeight(s) }
