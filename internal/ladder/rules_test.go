package ladder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvatar(t *testing.T) {
	assert.Equal(t, "AL", Avatar("alex"))
	assert.Equal(t, "JO", Avatar("  Jordan Ray"))
	assert.Equal(t, "ÉL", Avatar("élodie"))
	assert.Equal(t, "X", Avatar("x"))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "jordan-ray", Slug("Jordan Ray"))
	assert.Equal(t, "sam", Slug("  SAM "))
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(ErrDraw))
	assert.False(t, IsValidationError(ErrPlayerNotFound))
	assert.False(t, IsValidationError(nil))
}
