package mapping

import "github.com/minamhq/minam-backend/internal/types"

// Project maps dataset rows onto a declared feature list: one output row per
// input row, one field per declared feature (in declared order), value taken
// from the input row when present, else an explicit nil. Absence in the
// output never happens; a feature missing from the input is a present key
// with a nil value. Duplicate feature names overwrite earlier outputs for
// that name. A nil input row projects to an all-nil record.
func Project(rows []types.Row, features []types.FeatureSpec) []types.Row {
	mapped := make([]types.Row, 0, len(rows))
	for _, row := range rows {
		out := make(types.Row, len(features))
		for _, feat := range features {
			if v, ok := row[feat.Name]; ok {
				out[feat.Name] = v
			} else {
				out[feat.Name] = nil
			}
		}
		mapped = append(mapped, out)
	}
	return mapped
}
