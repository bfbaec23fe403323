package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hexahash/attendance-portal-go/internal/domain/user"
	"github.com/hexahash/attendance-portal-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, username, email, password_hash, role, employee_id, mobile, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role,
		&u.EmployeeID, &u.Mobile, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (username, email, password_hash, role, employee_id, mobile, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	created, err := scanUser(q.QueryRow(ctx, query,
		u.Username, u.Email, u.PasswordHash, u.Role, u.EmployeeID, u.Mobile, u.IsActive,
	))
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return u, nil
}

func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	u, err := scanUser(q.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return u, nil
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET email = $1, password_hash = $2, role = $3, employee_id = $4,
			mobile = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		u.Email, u.PasswordHash, u.Role, u.EmployeeID, u.Mobile, u.IsActive, u.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

func (r *userRepositoryImpl) LogActivity(ctx context.Context, log user.ActivityLog) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO activity_logs (user_id, action, ip_address, ts)
		VALUES ($1, $2, $3, NOW())
	`

	if _, err := q.Exec(ctx, query, log.UserID, log.Action, log.IPAddress); err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}

	return nil
}

func (r *userRepositoryImpl) ListActivity(ctx context.Context, limit int) ([]user.ActivityLog, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT a.id, a.user_id, a.action, a.ip_address, a.ts, u.username
		FROM activity_logs a
		JOIN users u ON u.id = a.user_id
		ORDER BY a.ts DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	defer rows.Close()

	var logs []user.ActivityLog
	for rows.Next() {
		var l user.ActivityLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Action, &l.IPAddress, &l.Timestamp, &l.Username); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
