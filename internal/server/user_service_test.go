package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-cards/internal/config"
	"github.com/jonathan/resume-cards/internal/db"
	"github.com/jonathan/resume-cards/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserStore is an in-memory UserStore for unit tests.
type fakeUserStore struct {
	byEmail map[string]*db.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]*db.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, name, email, passwordHash string) (*db.User, error) {
	u := &db.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.byEmail[email] = u
	return u, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, db.ErrNotFound
}

func (f *fakeUserStore) GetUser(_ context.Context, id uuid.UUID) (*db.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func newTestUserService(store UserStore) *UserService {
	// MinCost keeps hashing fast in tests
	return NewUserService(store, &config.PasswordConfig{BcryptCost: bcrypt.MinCost})
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	service := newTestUserService(newFakeUserStore())
	ctx := context.Background()

	user, err := service.Register(ctx, &types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "jane@example.com", user.Email)

	loggedIn, err := service.Login(ctx, &types.LoginRequest{
		Email:    "jane@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	service := newTestUserService(newFakeUserStore())
	ctx := context.Background()

	_, err := service.Register(ctx, &types.CreateUserRequest{
		Name: "Jane", Email: "jane@example.com", Password: "password1",
	})
	require.NoError(t, err)

	_, err = service.Register(ctx, &types.CreateUserRequest{
		Name: "Other Jane", Email: "jane@example.com", Password: "password2",
	})
	var dupErr *ErrEmailAlreadyExists
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "jane@example.com", dupErr.Email)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	service := newTestUserService(newFakeUserStore())
	ctx := context.Background()

	_, err := service.Register(ctx, &types.CreateUserRequest{
		Name: "Jane", Email: "jane@example.com", Password: "the-right-one",
	})
	require.NoError(t, err)

	_, err = service.Login(ctx, &types.LoginRequest{
		Email: "jane@example.com", Password: "the-wrong-one",
	})
	var credErr *ErrInvalidCredentials
	assert.ErrorAs(t, err, &credErr)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	service := newTestUserService(newFakeUserStore())

	_, err := service.Login(context.Background(), &types.LoginRequest{
		Email: "nobody@example.com", Password: "whatever",
	})

	// Unknown email and wrong password are indistinguishable
	var credErr *ErrInvalidCredentials
	assert.ErrorAs(t, err, &credErr)
}
