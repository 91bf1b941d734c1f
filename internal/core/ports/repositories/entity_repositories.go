package repositories

import (
	"context"

	"github.com/propfolio/ledger_backend/internal/core/domain"
)

// EntityReader defines read operations for financial entity data
type EntityReader interface {
	// FindEntityByID retrieves a specific financial entity by its unique identifier.
	FindEntityByID(ctx context.Context, entityID string) (*domain.FinancialEntity, error)

	// FindEntityByOrganizationID retrieves the single financial entity owned by an organization.
	// Returns apperrors.ErrNoFinancialEntity when the organization has no entity.
	FindEntityByOrganizationID(ctx context.Context, organizationID string) (*domain.FinancialEntity, error)
}

// EntityWriter defines write operations for financial entity data
type EntityWriter interface {
	// SaveEntity persists a new financial entity.
	SaveEntity(ctx context.Context, entity domain.FinancialEntity) error
}

// EntityRepositoryFacade combines all entity-related repository interfaces
type EntityRepositoryFacade interface {
	EntityReader
	EntityWriter
}
