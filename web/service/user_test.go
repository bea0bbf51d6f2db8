package service

import (
	"testing"

	"storefront/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	setup(t)

	svc := UserService{}

	user, err := svc.Register("alice", "alice@example.com", "hunter22", "hunter22", model.RoleCustomer, "")
	require.NoError(t, err)
	assert.NotZero(t, user.Id)
	assert.Equal(t, model.RoleCustomer, user.Role)

	got, err := svc.Authenticate("alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.Id, got.Id)

	_, err = svc.Authenticate("alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = svc.Authenticate("nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setup(t)

	svc := UserService{}

	_, err := svc.Register("alice", "alice@example.com", "hunter22", "hunter22", model.RoleCustomer, "")
	require.NoError(t, err)

	// Same email, completely different fields.
	_, err = svc.Register("bob", "alice@example.com", "different7", "different7", model.RoleSeller, "Bob's Shop")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Seeded accounts count too.
	_, err = svc.Register("eve", "admin@example.com", "hunter22", "hunter22", model.RoleCustomer, "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	setup(t)

	svc := UserService{}

	var verr *ValidationError

	_, err := svc.Register("", "a@example.com", "hunter22", "hunter22", model.RoleCustomer, "")
	assert.ErrorAs(t, err, &verr)

	_, err = svc.Register("alice", "a@example.com", "short", "short", model.RoleCustomer, "")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Password must be at least 6 characters", verr.Message)

	_, err = svc.Register("alice", "a@example.com", "hunter22", "mismatch", model.RoleCustomer, "")
	assert.ErrorAs(t, err, &verr)

	_, err = svc.Register("alice", "a@example.com", "hunter22", "hunter22", model.RoleSeller, "")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Shop name is required for sellers", verr.Message)

	// Nobody self-registers as admin.
	_, err = svc.Register("alice", "a@example.com", "hunter22", "hunter22", model.RoleAdmin, "")
	assert.ErrorAs(t, err, &verr)
}

func TestListUsers(t *testing.T) {
	setup(t)

	svc := UserService{}

	registerCustomer(t, "c1@example.com")
	registerSeller(t, "s1@example.com", "Shop One")

	users, err := svc.ListUsers()
	require.NoError(t, err)
	// Seeded admin and seller plus the two above.
	assert.Len(t, users, 4)
}

func TestResetAdminPassword(t *testing.T) {
	setup(t)

	svc := UserService{}

	var verr *ValidationError
	err := svc.ResetAdminPassword("short")
	assert.ErrorAs(t, err, &verr)

	require.NoError(t, svc.ResetAdminPassword("new-password"))

	admin, err := svc.Authenticate("admin@example.com", "new-password")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
}
