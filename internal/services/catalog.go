package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/minamhq/minam-backend/internal/platform/logger"
	"github.com/minamhq/minam-backend/internal/store"
	"github.com/minamhq/minam-backend/internal/types"
)

const previewRows = 5

// CatalogService registers providers, model profiles and datasets, and serves
// the catalog read paths. Creation always succeeds given well-formed input;
// entities are immutable once stored.
type CatalogService interface {
	CreateProvider(ctx context.Context, input types.ProviderCreate) *types.Provider
	ListProviders(ctx context.Context) []*types.Provider

	CreateModelProfile(ctx context.Context, input types.ModelProfileCreate) *types.ModelProfile
	ListModelProfiles(ctx context.Context) []*types.ModelProfile

	CreateDataset(ctx context.Context, input types.DatasetCreate) *types.Dataset
	ListDatasets(ctx context.Context) []*types.Dataset

	// PreviewDataset returns the first rows of a dataset, or an empty slice
	// when the id is unknown. Unknown ids are not an error on this path.
	PreviewDataset(ctx context.Context, id uuid.UUID) []types.Row
}

type catalogService struct {
	store *store.Store
	log   *logger.Logger
}

func NewCatalogService(st *store.Store, baseLog *logger.Logger) CatalogService {
	return &catalogService{
		store: st,
		log:   baseLog.With("service", "CatalogService"),
	}
}

func (cs *catalogService) CreateProvider(ctx context.Context, input types.ProviderCreate) *types.Provider {
	provider := &types.Provider{
		ID:           uuid.New(),
		Name:         input.Name,
		ContactEmail: input.ContactEmail,
	}
	cs.store.Providers.Insert(provider.ID, provider)
	cs.log.Info("provider registered", "provider_id", provider.ID, "name", provider.Name)
	return provider
}

func (cs *catalogService) ListProviders(ctx context.Context) []*types.Provider {
	return cs.store.Providers.List()
}

func (cs *catalogService) CreateModelProfile(ctx context.Context, input types.ModelProfileCreate) *types.ModelProfile {
	profile := &types.ModelProfile{
		ID:          uuid.New(),
		Name:        input.Name,
		Version:     input.Version,
		Description: input.Description,
		Features:    input.Features,
	}
	cs.store.Models.Insert(profile.ID, profile)
	cs.log.Info("model profile registered",
		"model_profile_id", profile.ID, "name", profile.Name, "features", len(profile.Features))
	return profile
}

func (cs *catalogService) ListModelProfiles(ctx context.Context) []*types.ModelProfile {
	return cs.store.Models.List()
}

func (cs *catalogService) CreateDataset(ctx context.Context, input types.DatasetCreate) *types.Dataset {
	ds := &types.Dataset{
		ID:          uuid.New(),
		ProviderID:  input.ProviderID,
		Name:        input.Name,
		Description: input.Description,
		Rows:        input.Rows,
	}
	cs.store.Datasets.Insert(ds.ID, ds)
	cs.log.Info("dataset registered", "dataset_id", ds.ID, "name", ds.Name, "rows", len(ds.Rows))
	return ds
}

func (cs *catalogService) ListDatasets(ctx context.Context) []*types.Dataset {
	return cs.store.Datasets.List()
}

func (cs *catalogService) PreviewDataset(ctx context.Context, id uuid.UUID) []types.Row {
	ds, ok := cs.store.Datasets.Get(id)
	if !ok {
		return []types.Row{}
	}
	n := previewRows
	if len(ds.Rows) < n {
		n = len(ds.Rows)
	}
	preview := make([]types.Row, n)
	copy(preview, ds.Rows[:n])
	return preview
}
