package utils

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSoftmaxSumsToOne(t *testing.T) {
	for _, x := range [][]float64{
		{1, 2, 3},
		{2, 2, 2},
		{-1000, 0, 1000},
		{800, 801, 799},
	} {
		out := Softmax(x)
		sum := 0.
		for _, v := range out {
			require.True(t, v >= 0 && v <= 1)
			sum += v
		}
		require.InDelta(t, 1.0, sum, 1e-6)
	}
}

func TestReluAndReluD(t *testing.T) {
	in := []float64{1, -2, 3, 0, -0.5, 5}
	for _, v := range in {
		require.True(t, Relu(v) >= 0)
		d := ReluD(v)
		if v > 0 {
			require.Equal(t, 1.0, d)
		} else {
			require.Equal(t, 0.0, d)
		}
	}
}

func TestArgmaxFirstOnTies(t *testing.T) {
	require.Equal(t, 1, Argmax([]float64{0.1, 0.5, 0.5, 0.2}))
	require.Equal(t, 0, Argmax([]float64{3, 3, 3}))
}

func TestRandomFillRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for _, v := range RandomFill(rnd, 1000, -0.5, 0.5) {
		require.True(t, v >= -0.5 && v < 0.5)
	}

	a := RandomFill(rand.New(rand.NewSource(3)), 10, -1, 1)
	b := RandomFill(rand.New(rand.NewSource(3)), 10, -1, 1)
	require.Equal(t, a, b)
}
