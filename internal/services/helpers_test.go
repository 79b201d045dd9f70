package services

import (
	"go.uber.org/zap"

	"github.com/google/uuid"

	"github.com/minamhq/minam-backend/internal/platform/logger"
	"github.com/minamhq/minam-backend/internal/store"
	"github.com/minamhq/minam-backend/internal/types"
)

func newTestLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func seedDataset(st *store.Store, rows []types.Row) uuid.UUID {
	id := uuid.New()
	st.Datasets.Insert(id, &types.Dataset{
		ID:         id,
		ProviderID: uuid.New(),
		Name:       "signals",
		Rows:       rows,
	})
	return id
}

func seedProfile(st *store.Store, features ...types.FeatureSpec) uuid.UUID {
	id := uuid.New()
	st.Models.Insert(id, &types.ModelProfile{
		ID:       id,
		Name:     "baseline",
		Version:  "0.1",
		Features: features,
	})
	return id
}
