package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hexahash/attendance-portal-go/internal/domain/master/device"
	"github.com/hexahash/attendance-portal-go/internal/pkg/database"
)

type deviceRepositoryImpl struct {
	db *database.DB
}

func NewDeviceRepository(db *database.DB) device.DeviceRepository {
	return &deviceRepositoryImpl{db: db}
}

const deviceColumns = `id, name, location, serial_no, is_active, last_seen_at, created_at, updated_at`

func scanDevice(row pgx.Row) (*device.Device, error) {
	var d device.Device
	err := row.Scan(&d.ID, &d.Name, &d.Location, &d.SerialNo, &d.IsActive, &d.LastSeenAt, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *deviceRepositoryImpl) Create(ctx context.Context, d *device.Device) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO devices (name, location, serial_no, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, d.Name, d.Location, d.SerialNo, d.IsActive).
		Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create device: %w", err)
	}

	return nil
}

func (r *deviceRepositoryImpl) GetByID(ctx context.Context, id string) (*device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + deviceColumns + ` FROM devices WHERE id = $1`

	d, err := scanDevice(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, device.ErrDeviceNotFound
		}
		return nil, fmt.Errorf("failed to get device by id: %w", err)
	}

	return d, nil
}

func (r *deviceRepositoryImpl) GetByName(ctx context.Context, name string) (*device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + deviceColumns + ` FROM devices WHERE LOWER(name) = LOWER($1)`

	d, err := scanDevice(q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, device.ErrDeviceNotFound
		}
		return nil, fmt.Errorf("failed to get device by name: %w", err)
	}

	return d, nil
}

func (r *deviceRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + deviceColumns + ` FROM devices`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	defer rows.Close()

	var devices []device.Device
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, err
		}
		devices = append(devices, *d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return devices, nil
}

func (r *deviceRepositoryImpl) Update(ctx context.Context, d *device.Device) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE devices
		SET name = $1, location = $2, serial_no = $3, is_active = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, d.Name, d.Location, d.SerialNo, d.IsActive, d.ID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return device.ErrDeviceNotFound
		}
		return fmt.Errorf("failed to update device: %w", err)
	}

	return nil
}

func (r *deviceRepositoryImpl) TouchLastSeen(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE devices SET last_seen_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to touch device last seen: %w", err)
	}

	return nil
}

func (r *deviceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return device.ErrDeviceNotFound
	}

	return nil
}
