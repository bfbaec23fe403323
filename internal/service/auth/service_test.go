package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hexahash/attendance-portal-go/internal/domain/auth"
	"github.com/hexahash/attendance-portal-go/internal/domain/user"
	"github.com/hexahash/attendance-portal-go/internal/pkg/jwt"
)

type fakeUserRepo struct {
	users      map[string]user.User // by id
	activities []user.ActivityLog
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	u.ID = fmt.Sprintf("user-%d", len(f.users)+1)
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) LogActivity(_ context.Context, log user.ActivityLog) error {
	f.activities = append(f.activities, log)
	return nil
}

func (f *fakeUserRepo) ListActivity(_ context.Context, limit int) ([]user.ActivityLog, error) {
	if limit > len(f.activities) {
		limit = len(f.activities)
	}
	return f.activities[:limit], nil
}

func seedUser(repo *fakeUserRepo, username, password string) user.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	u, _ := repo.Create(context.Background(), user.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		Role:         user.RoleEmployee,
		IsActive:     true,
	})
	return u
}

func newTestAuthService(repo *fakeUserRepo) auth.AuthService {
	jwtService := jwt.NewJWTService("test-secret", "1h", "24h")
	return NewAuthService(repo, jwtService)
}

func TestLoginRecordsActivity(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	u := seedUser(repo, "john", "password123")

	svc := newTestAuthService(repo)

	ip := "10.0.0.7"
	resp, err := svc.Login(ctx, &auth.LoginRequest{Username: "john", Password: "password123", IPAddress: &ip})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	require.Len(t, repo.activities, 1)
	assert.Equal(t, u.ID, repo.activities[0].UserID)
	assert.Equal(t, "login", repo.activities[0].Action)
	require.NotNil(t, repo.activities[0].IPAddress)
	assert.Equal(t, ip, *repo.activities[0].IPAddress)
}

func TestLoginInvalidPasswordRecordsNothing(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	seedUser(repo, "john", "password123")

	svc := newTestAuthService(repo)

	_, err := svc.Login(ctx, &auth.LoginRequest{Username: "john", Password: "wrong-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.Empty(t, repo.activities)
}

func TestLogoutRecordsActivityAndRevokesTokens(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	u := seedUser(repo, "john", "password123")

	jwtService := jwt.NewJWTService("test-secret", "1h", "24h")
	svc := NewAuthService(repo, jwtService)

	resp, err := svc.Login(ctx, &auth.LoginRequest{Username: "john", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.AccessToken, resp.RefreshToken))

	assert.True(t, jwtService.IsTokenRevoked(resp.AccessToken))
	assert.True(t, jwtService.IsTokenRevoked(resp.RefreshToken))

	require.Len(t, repo.activities, 2)
	assert.Equal(t, "logout", repo.activities[1].Action)
	assert.Equal(t, u.ID, repo.activities[1].UserID)
}

func TestRegisterRecordsActivity(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	resp, err := svc.Register(ctx, &auth.RegisterRequest{
		Username: "jane",
		Email:    "jane@example.com",
		Password: "password123",
		Role:     "manager",
	})
	require.NoError(t, err)

	require.Len(t, repo.activities, 1)
	assert.Equal(t, resp.ID, repo.activities[0].UserID)
	assert.Equal(t, "register", repo.activities[0].Action)
}
