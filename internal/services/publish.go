package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/minamhq/minam-backend/internal/platform/apierr"
	"github.com/minamhq/minam-backend/internal/platform/logger"
	"github.com/minamhq/minam-backend/internal/store"
	"github.com/minamhq/minam-backend/internal/types"
)

const (
	productVersion    = "v1"
	productStatusLive = "live"
)

// PublishService is the single authority for promoting a proposal into a
// published product.
type PublishService interface {
	// Publish gates the request against stored proposal state. Checks run
	// strictly in order: proposal exists, approval note non-blank after
	// trimming, proposal passed. The first failing check wins and nothing
	// is written on failure. Provider id, name and pricing are carried
	// verbatim and not validated against the provider table. A passing
	// proposal is not consumed and may back any number of products.
	Publish(ctx context.Context, req types.PublishRequest) (*types.ApiProduct, *apierr.Error)

	ListProducts(ctx context.Context) []*types.ApiProduct
}

type publishService struct {
	store *store.Store
	log   *logger.Logger
}

func NewPublishService(st *store.Store, baseLog *logger.Logger) PublishService {
	return &publishService{
		store: st,
		log:   baseLog.With("service", "PublishService"),
	}
}

func (ps *publishService) Publish(ctx context.Context, req types.PublishRequest) (*types.ApiProduct, *apierr.Error) {
	proposal, ok := ps.store.Proposals.Get(req.ProposalID)
	if !ok {
		return nil, notFound(CodeProposalNotFound, "proposal not found")
	}
	if strings.TrimSpace(req.HumanApprovalNote) == "" {
		return nil, validationFailed(CodeHumanNoteRequired, "a human approval note is required to publish")
	}
	if !proposal.Pass {
		return nil, policyRejected(CodeEvalsNotPassed, "proposal did not meet the coverage threshold")
	}

	product := &types.ApiProduct{
		ID:                uuid.New(),
		Name:              req.Name,
		Pricing:           req.Pricing,
		ProviderID:        req.ProviderID,
		DatasetID:         proposal.DatasetID,
		ModelProfileID:    proposal.ModelProfileID,
		Version:           productVersion,
		Status:            productStatusLive,
		HumanApprovalNote: req.HumanApprovalNote,
	}
	ps.store.Products.Insert(product.ID, product)

	ps.log.Info("api product published",
		"product_id", product.ID,
		"proposal_id", req.ProposalID,
		"provider_id", req.ProviderID,
		"name", product.Name)

	return product, nil
}

func (ps *publishService) ListProducts(ctx context.Context) []*types.ApiProduct {
	return ps.store.Products.List()
}
