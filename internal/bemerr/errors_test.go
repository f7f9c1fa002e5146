package bemerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementErrorUnwrap(t *testing.T) {
	err := Element(ErrIllPosed, 4, "alpha=%v beta=%v", 0, 0)
	assert.True(t, errors.Is(err, ErrIllPosed))
	assert.False(t, errors.Is(err, ErrGeometry))
	assert.Contains(t, err.Error(), "element 5")

	var ee *ElementError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 4, ee.Index)
}

func TestCaseErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("lu: %w", ErrSingular)
	err := &CaseError{Case: 2, Frequency: 50, Wavenumber: 0.9132, Err: inner}

	assert.True(t, errors.Is(err, ErrSingular))
	assert.Contains(t, err.Error(), "case 3")
	assert.Contains(t, err.Error(), "f=50 Hz")
}
