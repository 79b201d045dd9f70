package mapping

import "github.com/minamhq/minam-backend/internal/types"

// Coverage computes the fill rate per declared feature over mapped rows: the
// fraction of rows where the field is present and not nil. Zero rows yields
// 0.0 for every feature, never NaN. Duplicate feature names produce one
// coverage entry per declared occurrence.
func Coverage(mapped []types.Row, features []types.FeatureSpec) []types.FeatureCoverage {
	total := float64(len(mapped))
	out := make([]types.FeatureCoverage, 0, len(features))
	for _, feat := range features {
		nonNull := 0.0
		for _, row := range mapped {
			if v, ok := row[feat.Name]; ok && v != nil {
				nonNull++
			}
		}
		ratio := 0.0
		if total > 0 {
			ratio = nonNull / total
		}
		out = append(out, types.FeatureCoverage{Name: feat.Name, Coverage: ratio})
	}
	return out
}

// Passes reports whether every coverage value meets minCoverage. An empty
// coverage vector trivially passes.
func Passes(coverage []types.FeatureCoverage, minCoverage float64) bool {
	for _, c := range coverage {
		if c.Coverage < minCoverage {
			return false
		}
	}
	return true
}
