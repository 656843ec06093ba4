package utils

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// ********************************** SLICE MANIPULATION **********************************

// Random generate a random floating point number in [a, b) drawn from rnd
func Random(rnd *rand.Rand, a, b float64) float64 {
	return (b-a)*rnd.Float64() + a
}

// RandomFill returns slice of given length filled with values uniform in [a, b) drawn from rnd
func RandomFill(rnd *rand.Rand, length int, a, b float64) []float64 {
	c := make([]float64, length)
	for i := range c {
		c[i] = Random(rnd, a, b)
	}
	return c
}

func Max(a []float64) float64 {
	max := a[0]
	for i := range a {
		if a[i] > max {
			max = a[i]
		}
	}
	return max
}

// Argmax returns the index of the largest value of a, the lowest index on ties
func Argmax(a []float64) int {
	return floats.MaxIdx(a)
}

// ********************************** ACTIVATION FUNCTIONS **********************************

// Relu is the rectifier function: max(0,x)
func Relu(x float64) float64 {
	return math.Max(0, x)
}

// ReluD is the derivative of the Relu function
// {0: if x <= 0, 1: if x > 0}
func ReluD(x float64) float64 {
	if x > 0 {
		return 1.0
	}
	return 0.0
}

// Softmax activation function, shifted by the maximum so that exp never overflows
func Softmax(x []float64) []float64 {
	out := make([]float64, len(x))
	var sum float64
	max := Max(x)
	for i, y := range x {
		out[i] = math.Exp(y - max)
		sum += out[i]
	}
	floats.Scale(1/sum, out)
	return out
}

// make function float -> float into function to apply to matrix (int, int, float -> float)
func ToApply(f func(float64) float64) func(i, j int, v float64) float64 {
	f_prime := func(i, j int, v float64) float64 {
		return f(v)
	}
	return f_prime
}
