package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/domain/user"
)

func TestNew(t *testing.T) {
	guest, err := user.New("u-1", "Maria Silva")
	require.NoError(t, err)
	assert.Equal(t, "u-1", guest.ID)
	assert.Equal(t, "Maria Silva", guest.Name)
}

func TestNewRequiresName(t *testing.T) {
	_, err := user.New("u-1", "")
	assert.EqualError(t, err, "User name is required")

	_, err = user.New("u-1", "   ")
	assert.EqualError(t, err, "User name is required")
}

func TestNewRequiresID(t *testing.T) {
	_, err := user.New("", "Maria Silva")
	assert.EqualError(t, err, "User id is required")
}

func TestNameCheckedBeforeID(t *testing.T) {
	_, err := user.New("", "")
	assert.EqualError(t, err, "User name is required")
}
