package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/progracyd/capstone-matcher/internal/config"
	"github.com/progracyd/capstone-matcher/internal/db"
	"github.com/progracyd/capstone-matcher/internal/types"
)

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	byID    map[uuid.UUID]*db.User
	byEmail map[string]*db.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byID:    make(map[uuid.UUID]*db.User),
		byEmail: make(map[string]*db.User),
	}
}

func (f *fakeUserStore) CreateUser(_ context.Context, name, email, role, passwordHash string) (uuid.UUID, error) {
	u := &db.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return u.ID, nil
}

func (f *fakeUserStore) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func testUserService() (*UserService, *fakeUserStore) {
	store := newFakeUserStore()
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10}), store
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.edu",
		Password: "correct-horse",
		Role:     types.RoleStudent,
	})
	require.NoError(t, err)
	assert.Equal(t, types.RoleStudent, user.Role)

	logged, err := svc.Login(ctx, &types.LoginRequest{
		Email:    "alice@example.edu",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	req := &types.RegisterRequest{
		Name: "Alice", Email: "alice@example.edu",
		Password: "correct-horse", Role: types.RoleStudent,
	}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	var dup *ErrEmailAlreadyExists
	require.ErrorAs(t, err, &dup)
}

func TestUserService_LoginWrongPassword(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.RegisterRequest{
		Name: "Alice", Email: "alice@example.edu",
		Password: "correct-horse", Role: types.RoleStudent,
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "alice@example.edu", Password: "wrong"})
	var badCreds *ErrInvalidCredentials
	require.ErrorAs(t, err, &badCreds)
}

func TestUserService_LoginUnknownEmail(t *testing.T) {
	svc, _ := testUserService()

	_, err := svc.Login(context.Background(), &types.LoginRequest{Email: "ghost@example.edu", Password: "pw"})
	var badCreds *ErrInvalidCredentials
	require.ErrorAs(t, err, &badCreds)
}
