package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/minamhq/minam-backend/internal/mapping"
	"github.com/minamhq/minam-backend/internal/platform/apierr"
	"github.com/minamhq/minam-backend/internal/platform/logger"
	"github.com/minamhq/minam-backend/internal/store"
	"github.com/minamhq/minam-backend/internal/types"
)

const proposalSampleRows = 3

// PipelineService is the single entry point for turning a (dataset, model
// profile) pair into an evaluated proposal.
type PipelineService interface {
	// Run resolves both inputs, maps the dataset rows onto the profile's
	// features, evaluates per-feature coverage against the requested
	// minimum, and stores a new proposal. The dataset lookup is checked
	// first; once both inputs resolve the run cannot fail. Re-running with
	// identical inputs produces a new, independent proposal.
	Run(ctx context.Context, req types.PipelineRunRequest) (uuid.UUID, *types.Proposal, *apierr.Error)
}

type pipelineService struct {
	store *store.Store
	log   *logger.Logger
}

func NewPipelineService(st *store.Store, baseLog *logger.Logger) PipelineService {
	return &pipelineService{
		store: st,
		log:   baseLog.With("service", "PipelineService"),
	}
}

func (ps *pipelineService) Run(ctx context.Context, req types.PipelineRunRequest) (uuid.UUID, *types.Proposal, *apierr.Error) {
	ds, ok := ps.store.Datasets.Get(req.DatasetID)
	if !ok {
		return uuid.Nil, nil, notFound(CodeDatasetNotFound, "dataset not found")
	}
	profile, ok := ps.store.Models.Get(req.ModelProfileID)
	if !ok {
		return uuid.Nil, nil, notFound(CodeModelProfileNotFound, "model profile not found")
	}

	mapped := mapping.Project(ds.Rows, profile.Features)
	coverage := mapping.Coverage(mapped, profile.Features)
	pass := mapping.Passes(coverage, req.MinCoverage)

	n := proposalSampleRows
	if len(mapped) < n {
		n = len(mapped)
	}
	sample := make([]types.Row, n)
	copy(sample, mapped[:n])

	proposal := &types.Proposal{
		DatasetID:         ds.ID,
		ModelProfileID:    profile.ID,
		Sample:            sample,
		Coverage:          coverage,
		Pass:              pass,
		HumanNoteRequired: true,
	}
	proposalID := uuid.New()
	ps.store.Proposals.Insert(proposalID, proposal)

	ps.log.Info("pipeline run completed",
		"proposal_id", proposalID,
		"dataset_id", ds.ID,
		"model_profile_id", profile.ID,
		"rows", len(mapped),
		"pass", pass)

	return proposalID, proposal, nil
}
