package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hexahash/attendance-portal-go/internal/domain/master/department"
	"github.com/hexahash/attendance-portal-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

func (r *departmentRepositoryImpl) Create(ctx context.Context, d *department.Department) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (name, is_active)
		VALUES ($1, $2)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, d.Name, d.IsActive).Scan(&d.ID); err != nil {
		return fmt.Errorf("failed to create department: %w", err)
	}

	return nil
}

func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (*department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, is_active FROM departments WHERE id = $1`

	var d department.Department
	err := q.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, department.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department by id: %w", err)
	}

	return &d, nil
}

func (r *departmentRepositoryImpl) GetByName(ctx context.Context, name string) (*department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, is_active FROM departments WHERE LOWER(name) = LOWER($1)`

	var d department.Department
	err := q.QueryRow(ctx, query, name).Scan(&d.ID, &d.Name, &d.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, department.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department by name: %w", err)
	}

	return &d, nil
}

func (r *departmentRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, is_active FROM departments`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.IsActive); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

func (r *departmentRepositoryImpl) Update(ctx context.Context, d *department.Department) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = $1, is_active = $2
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, d.Name, d.IsActive, d.ID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to update department: %w", err)
	}

	return nil
}

func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}
