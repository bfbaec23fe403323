package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hexahash/attendance-portal-go/internal/domain/master/holiday"
	"github.com/hexahash/attendance-portal-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

const holidayColumns = `id, name, holiday_date, is_recurring`

func scanHoliday(row pgx.Row) (*holiday.Holiday, error) {
	var h holiday.Holiday
	err := row.Scan(&h.ID, &h.Name, &h.HolidayDate, &h.IsRecurring)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *holidayRepositoryImpl) Create(ctx context.Context, h *holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (name, holiday_date, is_recurring)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, h.Name, h.HolidayDate, h.IsRecurring).Scan(&h.ID); err != nil {
		return fmt.Errorf("failed to create holiday: %w", err)
	}

	return nil
}

func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (*holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + holidayColumns + ` FROM holidays WHERE id = $1`

	h, err := scanHoliday(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, holiday.ErrHolidayNotFound
		}
		return nil, fmt.Errorf("failed to get holiday by id: %w", err)
	}

	return h, nil
}

func (r *holidayRepositoryImpl) ListBetween(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	// Recurring holidays are fetched unconditionally; Occurs filters them
	// per date during derivation.
	query := `
		SELECT ` + holidayColumns + `
		FROM holidays
		WHERE is_recurring = TRUE
			OR (holiday_date >= $1 AND holiday_date <= $2)
		ORDER BY holiday_date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, *h)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}

func (r *holidayRepositoryImpl) List(ctx context.Context, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + holidayColumns + `
		FROM holidays
		WHERE is_recurring = TRUE OR EXTRACT(YEAR FROM holiday_date) = $1
		ORDER BY holiday_date
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays for year: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, *h)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}

func (r *holidayRepositoryImpl) Update(ctx context.Context, h *holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holidays
		SET name = $1, holiday_date = $2, is_recurring = $3
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, h.Name, h.HolidayDate, h.IsRecurring, h.ID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to update holiday: %w", err)
	}

	return nil
}

func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}
