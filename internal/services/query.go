package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/minamhq/minam-backend/internal/platform/logger"
	"github.com/minamhq/minam-backend/internal/store"
	"github.com/minamhq/minam-backend/internal/types"
)

// timeField is the row field the time-range filter reads, as an RFC3339
// string. Rows whose value does not parse are not filtered out.
const timeField = "ts"

type QueryRequest struct {
	// Exact-match filter: rows where Field is present with a different
	// string value are dropped. Rows missing the field pass through.
	Field string `json:"field"`
	Value string `json:"value"`

	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
	Limit int        `json:"limit"`
}

// QueryService is the consumer-facing read path: it resolves a published
// product back to its source dataset and returns filtered rows. No pipeline
// logic runs here.
type QueryService interface {
	// Query returns matching source rows for a product. Unknown product ids
	// (and products whose dataset no longer resolves) yield an empty slice,
	// never an error.
	Query(ctx context.Context, productID uuid.UUID, req QueryRequest) []types.Row
}

type queryService struct {
	store *store.Store
	log   *logger.Logger
}

func NewQueryService(st *store.Store, baseLog *logger.Logger) QueryService {
	return &queryService{
		store: st,
		log:   baseLog.With("service", "QueryService"),
	}
}

func (qs *queryService) Query(ctx context.Context, productID uuid.UUID, req QueryRequest) []types.Row {
	out := []types.Row{}
	product, ok := qs.store.Products.Get(productID)
	if !ok {
		return out
	}
	ds, ok := qs.store.Datasets.Get(product.DatasetID)
	if !ok {
		return out
	}

	for _, row := range ds.Rows {
		if !matchField(row, req.Field, req.Value) {
			continue
		}
		if !withinRange(row, req.Start, req.End) {
			continue
		}
		out = append(out, row)
		if req.Limit > 0 && len(out) >= req.Limit {
			break
		}
	}
	return out
}

func matchField(row types.Row, field, value string) bool {
	if field == "" {
		return true
	}
	v, ok := row[field]
	if !ok {
		return true
	}
	s, ok := v.(string)
	return ok && s == value
}

func withinRange(row types.Row, start, end *time.Time) bool {
	if start == nil && end == nil {
		return true
	}
	v, ok := row[timeField]
	if !ok {
		return true
	}
	s, ok := v.(string)
	if !ok {
		return true
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return true
	}
	if start != nil && ts.Before(*start) {
		return false
	}
	if end != nil && ts.After(*end) {
		return false
	}
	return true
}
