package types

import "github.com/google/uuid"

// Dataset rows are stored as-is and never mutated after creation. ProviderID
// is a weak reference: the store does not check it resolves to a Provider.
type Dataset struct {
	ID          uuid.UUID `json:"id"`
	ProviderID  uuid.UUID `json:"provider_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Rows        []Row     `json:"rows"`
}

type DatasetCreate struct {
	ProviderID  uuid.UUID `json:"provider_id"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Rows        []Row     `json:"rows"`
}
