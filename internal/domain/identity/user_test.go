package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserHashesPassword(t *testing.T) {
	u, err := NewUser("admin", "s3cret-pass")

	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", u.PasswordHash)
	assert.True(t, u.CheckPassword("s3cret-pass"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestNewUserRejectsShortPassword(t *testing.T) {
	_, err := NewUser("admin", "short")
	assert.Error(t, err)
}

func TestChangePasswordRequiresCurrent(t *testing.T) {
	u, err := NewUser("admin", "s3cret-pass")
	assert.NoError(t, err)

	err = u.ChangePassword("wrong", "another-pass")
	assert.Error(t, err)

	err = u.ChangePassword("s3cret-pass", "another-pass")
	assert.NoError(t, err)
	assert.True(t, u.CheckPassword("another-pass"))
	assert.Equal(t, 2, u.Version)
}

func TestDisableBlocksLogin(t *testing.T) {
	u, err := NewUser("admin", "s3cret-pass")
	assert.NoError(t, err)
	assert.True(t, u.IsActive())

	u.Disable()
	assert.False(t, u.IsActive())
}
