package matrix_test

import (
	"testing"

	"github.com/branchroot/minarb/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDense_SetAndAt(t *testing.T) {
	d, err := matrix.NewDense(3)
	require.NoError(t, err)

	_, ok, err := d.At(0, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, d.Set(0, 1, 7))
	cost, ok, err := d.At(0, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(7), cost)
}

func TestDense_RejectsInvalidSize(t *testing.T) {
	_, err := matrix.NewDense(0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_OutOfBounds(t *testing.T) {
	d, err := matrix.NewDense(2)
	require.NoError(t, err)

	_, _, err = d.At(5, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	d, err := matrix.NewDense(2)
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 0, 1))

	clone := d.Clone()
	require.NoError(t, clone.Set(0, 0, 99))

	cost, _, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cost)
}
