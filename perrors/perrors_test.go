package perrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessageIncludesKindAndOp(t *testing.T) {
	err := Astronomical("riseset.Sunrise", errors.New("polar day"))
	assert.Contains(t, err.Error(), "riseset.Sunrise")
	assert.Contains(t, err.Error(), "AstronomicalFailure")
	assert.Contains(t, err.Error(), "polar day")
}

func TestUnwrapReturnsUnderlyingError(t *testing.T) {
	underlying := errors.New("boom")
	err := Argument("calendar.Tithi", underlying)
	assert.Same(t, underlying, err.Unwrap())
}

func TestIsMatchesKind(t *testing.T) {
	err := Invariant("masa.Resolve", errors.New("unreachable"))
	assert.True(t, Is(err, InternalInvariantViolation))
	assert.False(t, Is(err, ArgumentError))
}

func TestIsFalseForPlainError(t *testing.T) {
	assert.False(t, Is(errors.New("plain"), ArgumentError))
}
