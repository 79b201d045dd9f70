package types

import "github.com/google/uuid"

type Provider struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
}

type ProviderCreate struct {
	Name         string `json:"name" binding:"required"`
	ContactEmail string `json:"contact_email"`
}
