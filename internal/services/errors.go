package services

import (
	"errors"
	"net/http"

	"github.com/minamhq/minam-backend/internal/platform/apierr"
)

// Closed error taxonomy of the core. Every failing core operation returns one
// of these as an *apierr.Error; nothing propagates as an unchecked fault.
const (
	CodeDatasetNotFound      = "DATASET_NOT_FOUND"
	CodeModelProfileNotFound = "MODEL_PROFILE_NOT_FOUND"
	CodeProposalNotFound     = "PROPOSAL_NOT_FOUND"
	CodeHumanNoteRequired    = "HUMAN_NOTE_REQUIRED"
	CodeEvalsNotPassed       = "EVALS_NOT_PASSED"
	CodeFileNotFound         = "FILE_NOT_FOUND"
)

func notFound(code string, msg string) *apierr.Error {
	return apierr.New(http.StatusNotFound, code, errors.New(msg))
}

func validationFailed(code string, msg string) *apierr.Error {
	return apierr.New(http.StatusBadRequest, code, errors.New(msg))
}

func policyRejected(code string, msg string) *apierr.Error {
	return apierr.New(http.StatusConflict, code, errors.New(msg))
}
