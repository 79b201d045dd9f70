package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/minamhq/minam-backend/internal/store"
	"github.com/minamhq/minam-backend/internal/types"
)

func TestCatalogCreateAndList(t *testing.T) {
	st := store.New()
	svc := NewCatalogService(st, newTestLogger())
	ctx := context.Background()

	provider := svc.CreateProvider(ctx, types.ProviderCreate{Name: "acme", ContactEmail: "data@acme.io"})
	if provider.ID == uuid.Nil {
		t.Fatalf("provider id is nil")
	}

	profile := svc.CreateModelProfile(ctx, types.ModelProfileCreate{
		Name:     "baseline",
		Version:  "0.1",
		Features: []types.FeatureSpec{{Name: "a", DType: "number"}},
	})
	if profile.ID == uuid.Nil {
		t.Fatalf("model profile id is nil")
	}

	ds := svc.CreateDataset(ctx, types.DatasetCreate{
		ProviderID: provider.ID,
		Name:       "signals",
		Rows:       []types.Row{{"a": 1}},
	})
	if ds.ID == uuid.Nil {
		t.Fatalf("dataset id is nil")
	}

	if got := len(svc.ListProviders(ctx)); got != 1 {
		t.Fatalf("providers: got=%d want=1", got)
	}
	if got := len(svc.ListModelProfiles(ctx)); got != 1 {
		t.Fatalf("model profiles: got=%d want=1", got)
	}
	if got := len(svc.ListDatasets(ctx)); got != 1 {
		t.Fatalf("datasets: got=%d want=1", got)
	}
}

func TestCatalogDatasetProviderNotChecked(t *testing.T) {
	// Dataset->provider is a weak reference: creation succeeds for a
	// provider id that was never registered.
	st := store.New()
	svc := NewCatalogService(st, newTestLogger())

	ds := svc.CreateDataset(context.Background(), types.DatasetCreate{
		ProviderID: uuid.New(),
		Name:       "orphan",
	})
	if ds.ID == uuid.Nil {
		t.Fatalf("dataset with unknown provider was rejected")
	}
}

func TestCatalogPreviewDataset(t *testing.T) {
	rows := []types.Row{
		{"i": 1}, {"i": 2}, {"i": 3}, {"i": 4}, {"i": 5}, {"i": 6}, {"i": 7},
	}

	cases := []struct {
		name string
		rows []types.Row
		want int
	}{
		{name: "caps_at_five", rows: rows, want: 5},
		{name: "fewer_than_five", rows: rows[:2], want: 2},
		{name: "empty_dataset", rows: nil, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := store.New()
			svc := NewCatalogService(st, newTestLogger())
			ds := svc.CreateDataset(context.Background(), types.DatasetCreate{Name: "signals", Rows: tc.rows})

			preview := svc.PreviewDataset(context.Background(), ds.ID)
			if len(preview) != tc.want {
				t.Fatalf("preview size: got=%d want=%d", len(preview), tc.want)
			}
		})
	}
}

func TestCatalogPreviewUnknownDataset(t *testing.T) {
	st := store.New()
	svc := NewCatalogService(st, newTestLogger())

	preview := svc.PreviewDataset(context.Background(), uuid.New())
	if preview == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(preview) != 0 {
		t.Fatalf("unknown dataset preview returned %d rows", len(preview))
	}
}
