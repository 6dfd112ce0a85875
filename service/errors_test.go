package service

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestDetailError(t *testing.T) {
	err := newDetailError(ErrNotFound, "Color not found")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Equal(t, "Color not found", Detail(err))

	wrapped := errors.Wrap(err, "outer")
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Equal(t, "Color not found", Detail(wrapped))
}

func TestGenerationFailed(t *testing.T) {
	cause := errors.New("chrome not found")
	err := generationFailed(cause)

	assert.True(t, errors.Is(err, ErrGenerationFailed))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "Error generating PDF: chrome not found", Detail(err))
}

func TestDetail_PlainError(t *testing.T) {
	assert.Equal(t, "boom", Detail(errors.New("boom")))
}
