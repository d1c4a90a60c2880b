package user_test

import (
	"testing"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("should create user", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "alice@example.com", "Alice")

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "alice@example.com", u.Email())
		assert.Equal(t, "Alice", u.Name())
	})

	t.Run("should fail with empty email", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "", "Alice")

		require.Error(t, err)
		assert.Nil(t, u)
	})

	t.Run("should fail with malformed email", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "alice.example.com", "Alice")

		require.Error(t, err)
		assert.Nil(t, u)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "alice@example.com", "")

		require.Error(t, err)
		assert.Nil(t, u)
	})

	t.Run("should collect all validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := user.NewUser(invalidID, "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("nil user should fail validation", func(t *testing.T) {
		var u *user.User

		assert.Equal(t, user.ErrUserIsNotConstructed, u.Validate())
	})
}
