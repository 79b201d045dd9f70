package types

import "github.com/google/uuid"

// FeatureCoverage is the fill rate for one declared feature over the mapped
// rows, in [0.0, 1.0]. Computed per pipeline run, never persisted on its own.
type FeatureCoverage struct {
	Name     string  `json:"name"`
	Coverage float64 `json:"coverage"`
}

// Proposal is the output of one pipeline run. DatasetID and ModelProfileID
// are weak references. Pass is strictly a function of Coverage and the
// threshold supplied at run time. HumanNoteRequired is always true; it is a
// fixed policy, not computed. Proposals are immutable once created and are
// not consumed by publishing.
type Proposal struct {
	DatasetID         uuid.UUID         `json:"dataset_id"`
	ModelProfileID    uuid.UUID         `json:"model_profile_id"`
	Sample            []Row             `json:"sample"`
	Coverage          []FeatureCoverage `json:"coverage"`
	Pass              bool              `json:"pass"`
	HumanNoteRequired bool              `json:"human_note_required"`
}

type PipelineRunRequest struct {
	DatasetID      uuid.UUID `json:"dataset_id"`
	ModelProfileID uuid.UUID `json:"model_profile_id"`
	MinCoverage    float64   `json:"min_coverage"`
}

type PipelineRunResult struct {
	ProposalID uuid.UUID `json:"proposal_id"`
	Result     *Proposal `json:"result"`
}
