package types

import "github.com/google/uuid"

// ApiProduct is a published, consumer-queryable product. It exists only if
// its backing proposal passed and the publish request carried a non-blank
// approval note. Immutable once created.
type ApiProduct struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Pricing           string    `json:"pricing"`
	ProviderID        uuid.UUID `json:"provider_id"`
	DatasetID         uuid.UUID `json:"dataset_id"`
	ModelProfileID    uuid.UUID `json:"model_profile_id"`
	Version           string    `json:"version"`
	Status            string    `json:"status"`
	HumanApprovalNote string    `json:"human_approval_note"`
}

type PublishRequest struct {
	ProposalID        uuid.UUID `json:"proposal_id"`
	ProviderID        uuid.UUID `json:"provider_id"`
	Name              string    `json:"name" binding:"required"`
	Pricing           string    `json:"pricing"`
	HumanApprovalNote string    `json:"human_approval_note"`
}
