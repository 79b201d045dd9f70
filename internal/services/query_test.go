package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/minamhq/minam-backend/internal/store"
	"github.com/minamhq/minam-backend/internal/types"
)

func seedProduct(st *store.Store, rows []types.Row) uuid.UUID {
	datasetID := seedDataset(st, rows)
	productID := uuid.New()
	st.Products.Insert(productID, &types.ApiProduct{
		ID:        productID,
		DatasetID: datasetID,
		Version:   "v1",
		Status:    "live",
	})
	return productID
}

func TestQueryUnknownProductYieldsEmpty(t *testing.T) {
	st := store.New()
	svc := NewQueryService(st, newTestLogger())

	rows := svc.Query(context.Background(), uuid.New(), QueryRequest{})
	if rows == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestQueryDanglingDatasetYieldsEmpty(t *testing.T) {
	st := store.New()
	productID := uuid.New()
	st.Products.Insert(productID, &types.ApiProduct{ID: productID, DatasetID: uuid.New()})

	svc := NewQueryService(st, newTestLogger())
	if rows := svc.Query(context.Background(), productID, QueryRequest{}); len(rows) != 0 {
		t.Fatalf("dangling dataset reference returned %d rows", len(rows))
	}
}

func TestQueryFilters(t *testing.T) {
	rows := []types.Row{
		{"symbol": "BTC", "ts": "2024-01-01T00:00:00Z", "price": 1.0},
		{"symbol": "ETH", "ts": "2024-02-01T00:00:00Z", "price": 2.0},
		{"symbol": "BTC", "ts": "2024-03-01T00:00:00Z", "price": 3.0},
		{"price": 4.0},
	}

	ts := func(s string) *time.Time {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			panic(err)
		}
		return &parsed
	}

	cases := []struct {
		name string
		req  QueryRequest
		want int
	}{
		{
			name: "no_filters_returns_all",
			req:  QueryRequest{},
			want: 4,
		},
		{
			name: "exact_match_keeps_missing_field_rows",
			req:  QueryRequest{Field: "symbol", Value: "BTC"},
			want: 3,
		},
		{
			name: "exact_match_no_hit",
			req:  QueryRequest{Field: "symbol", Value: "DOGE"},
			want: 1, // only the row without the field passes
		},
		{
			name: "start_bound",
			req:  QueryRequest{Start: ts("2024-01-15T00:00:00Z")},
			want: 3, // two later rows plus the row without ts
		},
		{
			name: "end_bound",
			req:  QueryRequest{End: ts("2024-01-15T00:00:00Z")},
			want: 2,
		},
		{
			name: "window",
			req:  QueryRequest{Start: ts("2024-01-15T00:00:00Z"), End: ts("2024-02-15T00:00:00Z")},
			want: 2,
		},
		{
			name: "limit",
			req:  QueryRequest{Limit: 2},
			want: 2,
		},
		{
			name: "combined",
			req:  QueryRequest{Field: "symbol", Value: "BTC", Start: ts("2024-02-15T00:00:00Z"), Limit: 5},
			want: 2, // late BTC row plus the row without symbol or ts
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := store.New()
			productID := seedProduct(st, rows)
			svc := NewQueryService(st, newTestLogger())

			got := svc.Query(context.Background(), productID, tc.req)
			if len(got) != tc.want {
				t.Fatalf("row count: got=%d want=%d", len(got), tc.want)
			}
		})
	}
}

func TestQueryNonStringFieldNeverMatches(t *testing.T) {
	st := store.New()
	productID := seedProduct(st, []types.Row{{"symbol": 42.0}})

	svc := NewQueryService(st, newTestLogger())
	rows := svc.Query(context.Background(), productID, QueryRequest{Field: "symbol", Value: "42"})
	if len(rows) != 0 {
		t.Fatalf("numeric field matched a string filter")
	}
}
