package layers

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/ldsec/mnistNN/mnistClear/utils"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestInitParameters(t *testing.T) {
	p, err := InitParameters(20, 784, 10, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.NoError(t, p.Check())

	h, in, c := p.Dims()
	require.Equal(t, 20, h)
	require.Equal(t, 784, in)
	require.Equal(t, 10, c)
	require.Equal(t, 20, p.B1.Len())
	require.Equal(t, 10, p.B2.Len())

	for _, m := range []mat.Matrix{p.W1, p.B1, p.W2, p.B2} {
		require.True(t, mat.Min(m) >= -0.5)
		require.True(t, mat.Max(m) <= 0.5)
	}
}

func TestInitParametersSeeded(t *testing.T) {
	p, err := InitParameters(5, 8, 10, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	q, err := InitParameters(5, 8, 10, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	require.True(t, p.Equal(q))

	r, err := InitParameters(5, 8, 10, rand.New(rand.NewSource(10)))
	require.NoError(t, err)
	require.False(t, p.Equal(r))
}

func TestInitParametersBadDims(t *testing.T) {
	_, err := InitParameters(0, 784, 10, rand.New(rand.NewSource(0)))
	require.True(t, errors.Is(err, utils.ErrShapeMismatch))
}

func TestClone(t *testing.T) {
	p, err := InitParameters(3, 4, 2, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	q := p.Clone()
	require.True(t, p.Equal(q))
	q.W1.Set(0, 0, 7)
	require.False(t, p.Equal(q))
}
