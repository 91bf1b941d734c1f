package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/propfolio/ledger_backend/internal/apperrors"
	"github.com/propfolio/ledger_backend/internal/core/domain"
	portsrepo "github.com/propfolio/ledger_backend/internal/core/ports/repositories"
	"github.com/propfolio/ledger_backend/internal/models"
	"github.com/propfolio/ledger_backend/internal/utils/mapping"
)

type PgxEntityRepository struct {
	BaseRepository
}

// newPgxEntityRepository creates a new repository for financial entity data.
func newPgxEntityRepository(pool PgxPool) portsrepo.EntityRepositoryFacade {
	return &PgxEntityRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.EntityRepositoryFacade = (*PgxEntityRepository)(nil)

const entityColumns = `entity_id, organization_id, name, created_at, created_by, last_updated_at, last_updated_by`

func scanEntity(row pgx.Row) (*models.FinancialEntity, error) {
	var m models.FinancialEntity
	err := row.Scan(
		&m.EntityID,
		&m.OrganizationID,
		&m.Name,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveEntity inserts a new financial entity.
func (r *PgxEntityRepository) SaveEntity(ctx context.Context, entity domain.FinancialEntity) error {
	m := mapping.ToModelEntity(entity)
	query := `
		INSERT INTO financial_entities (` + entityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntityID,
		m.OrganizationID,
		m.Name,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: financial entity for organization %s already exists", apperrors.ErrDuplicate, m.OrganizationID)
		}
		return fmt.Errorf("failed to save financial entity %s: %w", m.EntityID, err)
	}
	return nil
}

// FindEntityByID retrieves a financial entity by its ID.
func (r *PgxEntityRepository) FindEntityByID(ctx context.Context, entityID string) (*domain.FinancialEntity, error) {
	query := `SELECT ` + entityColumns + ` FROM financial_entities WHERE entity_id = $1;`

	m, err := scanEntity(r.Pool.QueryRow(ctx, query, entityID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find financial entity by ID "+entityID, err)
	}

	entity := mapping.ToDomainEntity(*m)
	return &entity, nil
}

// FindEntityByOrganizationID retrieves the single entity owned by an organization.
func (r *PgxEntityRepository) FindEntityByOrganizationID(ctx context.Context, organizationID string) (*domain.FinancialEntity, error) {
	query := `SELECT ` + entityColumns + ` FROM financial_entities WHERE organization_id = $1;`

	m, err := scanEntity(r.Pool.QueryRow(ctx, query, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: organization %s", apperrors.ErrNoFinancialEntity, organizationID)
		}
		return nil, apperrors.NewAppError(500, "failed to find financial entity for organization "+organizationID, err)
	}

	entity := mapping.ToDomainEntity(*m)
	return &entity, nil
}
