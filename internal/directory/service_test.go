package directory

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-orders/internal/domain"
	"restaurant-orders/internal/storage"
)

const testAdminCode = "admin123"

func newTestService(t *testing.T) *Service {
	t.Helper()
	lg := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := storage.NewFileStore(t.TempDir(), lg)
	require.NoError(t, err)
	return New(store, testAdminCode, lg)
}

func TestRegisterAndAuthenticateUser(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.RegisterUser(ctx, "alice", "pw", "555-0101"))

	account, err := s.Authenticate(ctx, "alice", "pw", domain.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, domain.RoleUser, account.Role)
	assert.Equal(t, "555-0101", account.Phone)

	_, err = s.Authenticate(ctx, "alice", "wrong", domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrAuthentication)

	// Right credentials, wrong partition.
	_, err = s.Authenticate(ctx, "alice", "pw", domain.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrAuthentication)
}

func TestRegisterUserValidation(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name                      string
		username, password, phone string
	}{
		{"missing username", "", "pw", "1"},
		{"missing password", "bob", "", "1"},
		{"missing phone", "bob", "pw", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.RegisterUser(ctx, tt.username, tt.password, tt.phone)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestDuplicateUsernameWithinPartition(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.RegisterUser(ctx, "alice", "pw", "1"))
	err := s.RegisterUser(ctx, "alice", "other", "2")
	assert.ErrorIs(t, err, domain.ErrDuplicateAccount)
}

func TestSameUsernameAcrossPartitions(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.RegisterUser(ctx, "sam", "pw", "1"))
	// No cross-partition uniqueness: "sam" can also be an admin.
	require.NoError(t, s.RegisterAdmin(ctx, "sam", "pw2", testAdminCode))

	_, err := s.Authenticate(ctx, "sam", "pw", domain.RoleUser)
	assert.NoError(t, err)
	_, err = s.Authenticate(ctx, "sam", "pw2", domain.RoleAdmin)
	assert.NoError(t, err)
}

func TestRegisterAdminCode(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	err := s.RegisterAdmin(ctx, "root", "pw", "wrong-code")
	assert.ErrorIs(t, err, domain.ErrInvalidAdminCode)

	require.NoError(t, s.RegisterAdmin(ctx, "root", "pw", testAdminCode))
	err = s.RegisterAdmin(ctx, "root", "pw", testAdminCode)
	assert.ErrorIs(t, err, domain.ErrDuplicateAccount)
}

func TestUpdateUser(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.RegisterUser(ctx, "alice", "pw", "1"))
	require.NoError(t, s.UpdateUser(ctx, "alice", "555-9999", "newpw"))

	account, err := s.Authenticate(ctx, "alice", "newpw", domain.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, "555-9999", account.Phone)

	_, err = s.Authenticate(ctx, "alice", "pw", domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrAuthentication)

	err = s.UpdateUser(ctx, "ghost", "1", "pw")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteUserIsIdempotent(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.RegisterUser(ctx, "alice", "pw", "1"))
	require.NoError(t, s.RegisterUser(ctx, "bob", "pw", "2"))

	require.NoError(t, s.DeleteUser(ctx, "alice"))
	// Deleting again, or deleting someone who never existed, does not fail
	// and leaves the collection unchanged.
	require.NoError(t, s.DeleteUser(ctx, "alice"))
	require.NoError(t, s.DeleteUser(ctx, "ghost"))

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "bob", users[0].Username)
}
