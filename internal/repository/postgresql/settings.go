package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hexahash/attendance-portal-go/internal/domain/settings"
	"github.com/hexahash/attendance-portal-go/internal/pkg/database"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

func (r *settingsRepositoryImpl) GetProfile(ctx context.Context) (*settings.CompanyProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, email, phone, logo_url, updated_at
		FROM company_profile
		LIMIT 1
	`

	var p settings.CompanyProfile
	err := q.QueryRow(ctx, query).Scan(&p.ID, &p.Name, &p.Address, &p.Email, &p.Phone, &p.LogoURL, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, settings.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get company profile: %w", err)
	}

	return &p, nil
}

func (r *settingsRepositoryImpl) UpsertProfile(ctx context.Context, p *settings.CompanyProfile) error {
	q := GetQuerier(ctx, r.db)

	// Single-row table keyed by a fixed id.
	query := `
		INSERT INTO company_profile (id, name, address, email, phone, logo_url)
		VALUES (COALESCE(NULLIF($1, ''), gen_random_uuid()::text), $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, address = EXCLUDED.address, email = EXCLUDED.email,
			phone = EXCLUDED.phone, logo_url = EXCLUDED.logo_url, updated_at = NOW()
		RETURNING id, updated_at
	`

	err := q.QueryRow(ctx, query, p.ID, p.Name, p.Address, p.Email, p.Phone, p.LogoURL).
		Scan(&p.ID, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert company profile: %w", err)
	}

	return nil
}

func (r *settingsRepositoryImpl) GetRule(ctx context.Context) (*settings.AttendanceRule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, grace_enabled, grace_minutes, rounding, half_day_hours, updated_at
		FROM attendance_rules
		LIMIT 1
	`

	var rule settings.AttendanceRule
	err := q.QueryRow(ctx, query).Scan(
		&rule.ID, &rule.GraceEnabled, &rule.GraceMinutes,
		&rule.Rounding, &rule.HalfDayHours, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			def := settings.DefaultAttendanceRule()
			return &def, nil
		}
		return nil, fmt.Errorf("failed to get attendance rule: %w", err)
	}

	return &rule, nil
}

func (r *settingsRepositoryImpl) UpsertRule(ctx context.Context, rule *settings.AttendanceRule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_rules (id, grace_enabled, grace_minutes, rounding, half_day_hours)
		VALUES (COALESCE(NULLIF($1, ''), gen_random_uuid()::text), $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET grace_enabled = EXCLUDED.grace_enabled, grace_minutes = EXCLUDED.grace_minutes,
			rounding = EXCLUDED.rounding, half_day_hours = EXCLUDED.half_day_hours, updated_at = NOW()
		RETURNING id, updated_at
	`

	err := q.QueryRow(ctx, query,
		rule.ID, rule.GraceEnabled, rule.GraceMinutes, rule.Rounding, rule.HalfDayHours,
	).Scan(&rule.ID, &rule.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert attendance rule: %w", err)
	}

	return nil
}

func (r *settingsRepositoryImpl) GetWorkWeek(ctx context.Context) ([]settings.WorkWeekDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT weekday, is_working FROM work_week ORDER BY weekday`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get work week: %w", err)
	}
	defer rows.Close()

	var days []settings.WorkWeekDay
	for rows.Next() {
		var weekday int
		var isWorking bool
		if err := rows.Scan(&weekday, &isWorking); err != nil {
			return nil, err
		}
		days = append(days, settings.WorkWeekDay{
			Weekday:   time.Weekday(weekday),
			IsWorking: isWorking,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(days) != 7 {
		return settings.DefaultWorkWeek(), nil
	}

	return days, nil
}

func (r *settingsRepositoryImpl) SetWorkWeek(ctx context.Context, days []settings.WorkWeekDay) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_week (weekday, is_working)
		VALUES ($1, $2)
		ON CONFLICT (weekday) DO UPDATE SET is_working = EXCLUDED.is_working
	`

	for _, d := range days {
		if _, err := q.Exec(ctx, query, int(d.Weekday), d.IsWorking); err != nil {
			return fmt.Errorf("failed to set work week day: %w", err)
		}
	}

	return nil
}
