package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hexahash/attendance-portal-go/internal/domain/master/shift"
	"github.com/hexahash/attendance-portal-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `id, name, start_time, end_time, grace_in, grace_out, is_active`

func scanShift(row pgx.Row) (*shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.GraceIn, &s.GraceOut, &s.IsActive)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *shiftRepositoryImpl) Create(ctx context.Context, s *shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (name, start_time, end_time, grace_in, grace_out, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		s.Name, s.StartTime, s.EndTime, s.GraceIn, s.GraceOut, s.IsActive,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}

	return nil
}

func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (*shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shift.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift by id: %w", err)
	}

	return s, nil
}

func (r *shiftRepositoryImpl) GetByName(ctx context.Context, name string) (*shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE LOWER(name) = LOWER($1)`

	s, err := scanShift(q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shift.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift by name: %w", err)
	}

	return s, nil
}

func (r *shiftRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (*shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.name, s.start_time, s.end_time, s.grace_in, s.grace_out, s.is_active
		FROM shifts s
		JOIN employees e ON e.shift_id = s.id
		WHERE e.id = $1
	`

	s, err := scanShift(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shift.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift for employee: %w", err)
	}

	return s, nil
}

func (r *shiftRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, *s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *shiftRepositoryImpl) Update(ctx context.Context, s *shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET name = $1, start_time = $2, end_time = $3, grace_in = $4, grace_out = $5, is_active = $6
		WHERE id = $7
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		s.Name, s.StartTime, s.EndTime, s.GraceIn, s.GraceOut, s.IsActive, s.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to update shift: %w", err)
	}

	return nil
}

func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var assigned int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE shift_id = $1`, id).Scan(&assigned); err != nil {
		return fmt.Errorf("failed to check shift assignments: %w", err)
	}
	if assigned > 0 {
		return shift.ErrShiftInUse
	}

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
