package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, u User) error

	LogActivity(ctx context.Context, log ActivityLog) error
	// ListActivity returns the most recent audit entries, newest first,
	// with the username joined in.
	ListActivity(ctx context.Context, limit int) ([]ActivityLog, error)
}
