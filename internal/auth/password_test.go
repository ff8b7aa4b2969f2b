package auth

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/dailydiet/internal/models"
	"github.com/mmynk/dailydiet/internal/storage"
)

// memoryUsers is an in-memory UserStorage for tests.
type memoryUsers struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
	failErr error
	creates int
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byEmail: make(map[string]*models.User)}
}

func (m *memoryUsers) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[user.Email]; ok {
		return storage.ErrDuplicate
	}
	copied := *user
	m.byEmail[user.Email] = &copied
	m.creates++
	return nil
}

func (m *memoryUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return nil, m.failErr
	}
	user, ok := m.byEmail[email]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return user, nil
}

func (m *memoryUsers) GetUserByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrNotFound
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	users := newMemoryUsers()
	a := NewPasswordAuthenticator(users)

	user, err := a.Register(ctx, "user@example.com", "New User", "123456")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "New User", user.Name)
	assert.NotEqual(t, "123456", user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "123456")
	assert.False(t, user.CreatedAt.IsZero())

	_, err = a.Register(ctx, "user@example.com", "Someone Else", "abcdef")
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.Equal(t, 1, users.creates)

	looked, err := a.LookupUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, looked.Email)
}

func TestRegister_WeakPassword(t *testing.T) {
	users := newMemoryUsers()
	a := NewPasswordAuthenticator(users)

	_, err := a.Register(context.Background(), "user@example.com", "User", "123")
	assert.ErrorIs(t, err, ErrWeakPassword)
	assert.Zero(t, users.creates)
}

func TestRegister_StorageFailure(t *testing.T) {
	users := newMemoryUsers()
	users.failErr = storage.ErrFailure
	a := NewPasswordAuthenticator(users)

	_, err := a.Register(context.Background(), "user@example.com", "User", "123456")
	assert.ErrorIs(t, err, storage.ErrFailure)
	assert.Zero(t, users.creates)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	a := NewPasswordAuthenticator(newMemoryUsers())

	registered, err := a.Register(ctx, "user@example.com", "User", "123456")
	require.NoError(t, err)

	user, err := a.Authenticate(ctx, "user@example.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, wrongPassword := a.Authenticate(ctx, "user@example.com", "654321")
	_, unknownEmail := a.Authenticate(ctx, "nobody@example.com", "123456")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthenticate_StorageFailure(t *testing.T) {
	users := newMemoryUsers()
	users.failErr = errors.Join(storage.ErrFailure, errors.New("connection refused"))
	a := NewPasswordAuthenticator(users)

	_, err := a.Authenticate(context.Background(), "user@example.com", "123456")
	assert.ErrorIs(t, err, storage.ErrFailure)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateCredential(t *testing.T) {
	a := NewPasswordAuthenticator(newMemoryUsers())

	tests := []struct {
		name       string
		credential string
		wantErr    error
	}{
		{"too short", "12345", ErrWeakPassword},
		{"minimum length", "123456", nil},
		{"multibyte counts runes", "ççççç", ErrWeakPassword},
		{"bcrypt limit", string(make([]byte, 73)), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.ValidateCredential(tt.credential)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
