package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// IResourceRepository defines storage operations for bookable resources
type IResourceRepository interface {
	Create(ctx context.Context, resource *models.Resource) error
	GetByID(ctx context.Context, id int64) (*models.Resource, error)
	List(ctx context.Context, onlyActive bool) ([]*models.Resource, error)
	Update(ctx context.Context, resource *models.Resource) error
	Delete(ctx context.Context, id int64) error
}

// ResourceRepository handles database operations for resources
type ResourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{db: db}
}

const resourceColumns = `id, name, type, location, capacity, department_id, is_active`

func scanResource(row pgx.Row) (*models.Resource, error) {
	var resource models.Resource
	err := row.Scan(
		&resource.ID,
		&resource.Name,
		&resource.Type,
		&resource.Location,
		&resource.Capacity,
		&resource.DepartmentID,
		&resource.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// Create creates a new resource
func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	query := `
		INSERT INTO resources (name, type, location, capacity, department_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		resource.Name, resource.Type, resource.Location,
		resource.Capacity, resource.DepartmentID, resource.IsActive,
	).Scan(&resource.ID)
	if err != nil {
		return fmt.Errorf("error creating resource: %w", err)
	}

	return nil
}

// GetByID retrieves a resource by ID
func (r *ResourceRepository) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1`

	resource, err := scanResource(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving resource: %w", err)
	}

	return resource, nil
}

// List retrieves resources ordered by ID, optionally only active ones
func (r *ResourceRepository) List(ctx context.Context, onlyActive bool) ([]*models.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources`
	if onlyActive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing resources: %w", err)
	}
	defer rows.Close()

	var resources []*models.Resource
	for rows.Next() {
		resource, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		resources = append(resources, resource)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return resources, nil
}

// Update persists all mutable fields of an existing resource
func (r *ResourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	query := `
		UPDATE resources
		SET name = $1, type = $2, location = $3, capacity = $4,
		    department_id = $5, is_active = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		resource.Name, resource.Type, resource.Location, resource.Capacity,
		resource.DepartmentID, resource.IsActive, resource.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating resource: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}

// Delete removes a resource by ID. Bookings cascade at the storage layer.
func (r *ResourceRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting resource: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}

	return nil
}
