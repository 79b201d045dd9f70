package mapping

import (
	"math"
	"testing"

	"github.com/minamhq/minam-backend/internal/types"
)

func TestCoverageZeroRows(t *testing.T) {
	cov := Coverage(nil, []types.FeatureSpec{{Name: "a"}})
	if len(cov) != 1 {
		t.Fatalf("unexpected coverage length: got=%d want=1", len(cov))
	}
	if cov[0].Coverage != 0.0 {
		t.Fatalf("coverage over zero rows: got=%v want=0.0", cov[0].Coverage)
	}
	if math.IsNaN(cov[0].Coverage) {
		t.Fatalf("coverage over zero rows is NaN")
	}
}

func TestCoveragePartialFill(t *testing.T) {
	rows := []types.Row{{"a": 1}, {"a": 2}, {"b": 3}}
	features := []types.FeatureSpec{{Name: "a"}}

	mapped := Project(rows, features)
	cov := Coverage(mapped, features)

	want := 2.0 / 3.0
	if math.Abs(cov[0].Coverage-want) > 1e-12 {
		t.Fatalf("coverage for a: got=%v want=%v", cov[0].Coverage, want)
	}
}

func TestCoverageNullMarkerNotCounted(t *testing.T) {
	// An explicit null in the source row is the null marker after mapping.
	rows := []types.Row{{"a": nil}, {"a": "x"}}
	features := []types.FeatureSpec{{Name: "a"}}

	cov := Coverage(Project(rows, features), features)
	if cov[0].Coverage != 0.5 {
		t.Fatalf("explicit null counted as coverage: got=%v want=0.5", cov[0].Coverage)
	}
}

func TestPasses(t *testing.T) {
	cases := []struct {
		name        string
		coverage    []types.FeatureCoverage
		minCoverage float64
		want        bool
	}{
		{
			name:        "empty_feature_list_trivially_passes",
			coverage:    nil,
			minCoverage: 1.0,
			want:        true,
		},
		{
			name:        "all_meet_threshold",
			coverage:    []types.FeatureCoverage{{Name: "a", Coverage: 0.7}, {Name: "b", Coverage: 0.9}},
			minCoverage: 0.5,
			want:        true,
		},
		{
			name:        "one_below_threshold",
			coverage:    []types.FeatureCoverage{{Name: "a", Coverage: 0.7}, {Name: "b", Coverage: 0.4}},
			minCoverage: 0.5,
			want:        false,
		},
		{
			name:        "exactly_at_threshold",
			coverage:    []types.FeatureCoverage{{Name: "a", Coverage: 0.5}},
			minCoverage: 0.5,
			want:        true,
		},
		{
			name:        "zero_threshold_always_passes",
			coverage:    []types.FeatureCoverage{{Name: "a", Coverage: 0.0}},
			minCoverage: 0.0,
			want:        true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Passes(tc.coverage, tc.minCoverage); got != tc.want {
				t.Fatalf("Passes(%v, %v)=%v, want %v", tc.coverage, tc.minCoverage, got, tc.want)
			}
		})
	}
}

func TestCoverageDuplicateFeatureRepeated(t *testing.T) {
	rows := []types.Row{{"a": 1}}
	features := []types.FeatureSpec{{Name: "a"}, {Name: "a"}}

	cov := Coverage(Project(rows, features), features)
	if len(cov) != 2 {
		t.Fatalf("duplicate feature coverage entries: got=%d want=2", len(cov))
	}
	if cov[0].Coverage != cov[1].Coverage {
		t.Fatalf("duplicate entries differ: %v vs %v", cov[0].Coverage, cov[1].Coverage)
	}
}
