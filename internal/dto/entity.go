package dto

import (
	"time"

	"github.com/propfolio/ledger_backend/internal/core/domain"
)

// CreateEntityRequest defines the data needed to open an organization's book
// of record. Each organization gets exactly one.
type CreateEntityRequest struct {
	OrganizationID string `json:"organizationID" binding:"required"`
	Name           string `json:"name" binding:"required"`
}

// EntityResponse defines the data returned for a financial entity.
type EntityResponse struct {
	EntityID       string    `json:"entityID"`
	OrganizationID string    `json:"organizationID"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"createdAt"`
	CreatedBy      string    `json:"createdBy"`
}

// ToEntityResponse converts a domain.FinancialEntity to EntityResponse DTO.
func ToEntityResponse(entity *domain.FinancialEntity) EntityResponse {
	return EntityResponse{
		EntityID:       entity.EntityID,
		OrganizationID: entity.OrganizationID,
		Name:           entity.Name,
		CreatedAt:      entity.CreatedAt,
		CreatedBy:      entity.CreatedBy,
	}
}
