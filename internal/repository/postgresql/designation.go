package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hexahash/attendance-portal-go/internal/domain/master/designation"
	"github.com/hexahash/attendance-portal-go/internal/pkg/database"
)

type designationRepositoryImpl struct {
	db *database.DB
}

func NewDesignationRepository(db *database.DB) designation.DesignationRepository {
	return &designationRepositoryImpl{db: db}
}

func (r *designationRepositoryImpl) Create(ctx context.Context, d *designation.Designation) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO designations (name, description, is_active)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, d.Name, d.Description, d.IsActive).Scan(&d.ID); err != nil {
		return fmt.Errorf("failed to create designation: %w", err)
	}

	return nil
}

func (r *designationRepositoryImpl) GetByID(ctx context.Context, id string) (*designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, description, is_active FROM designations WHERE id = $1`

	var d designation.Designation
	err := q.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.Description, &d.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, designation.ErrDesignationNotFound
		}
		return nil, fmt.Errorf("failed to get designation by id: %w", err)
	}

	return &d, nil
}

func (r *designationRepositoryImpl) GetByName(ctx context.Context, name string) (*designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, description, is_active FROM designations WHERE LOWER(name) = LOWER($1)`

	var d designation.Designation
	err := q.QueryRow(ctx, query, name).Scan(&d.ID, &d.Name, &d.Description, &d.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, designation.ErrDesignationNotFound
		}
		return nil, fmt.Errorf("failed to get designation by name: %w", err)
	}

	return &d, nil
}

func (r *designationRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, description, is_active FROM designations`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list designations: %w", err)
	}
	defer rows.Close()

	var designations []designation.Designation
	for rows.Next() {
		var d designation.Designation
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.IsActive); err != nil {
			return nil, err
		}
		designations = append(designations, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return designations, nil
}

func (r *designationRepositoryImpl) Update(ctx context.Context, d *designation.Designation) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE designations
		SET name = $1, description = $2, is_active = $3
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, d.Name, d.Description, d.IsActive, d.ID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return designation.ErrDesignationNotFound
		}
		return fmt.Errorf("failed to update designation: %w", err)
	}

	return nil
}

func (r *designationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM designations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete designation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return designation.ErrDesignationNotFound
	}

	return nil
}
