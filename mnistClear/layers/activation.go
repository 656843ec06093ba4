package layers

import (
	"fmt"
	"math"

	"github.com/ldsec/mnistNN/mnistClear/utils"
	"gonum.org/v1/gonum/mat"
)

func checkFinite(m mat.Matrix) error {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %v at (%d, %d)", utils.ErrNumericDegeneracy, v, i, j)
			}
		}
	}
	return nil
}

// Relu applies max(0, z) elementwise
func Relu(z mat.Matrix) (*mat.Dense, error) {
	if err := checkFinite(z); err != nil {
		return nil, err
	}
	var a mat.Dense
	a.Apply(utils.ToApply(utils.Relu), z)
	return &a, nil
}

// ReluD applies the derivative of Relu elementwise: 1 where z > 0, 0 elsewhere
func ReluD(z mat.Matrix) (*mat.Dense, error) {
	if err := checkFinite(z); err != nil {
		return nil, err
	}
	var d mat.Dense
	d.Apply(utils.ToApply(utils.ReluD), z)
	return &d, nil
}

// Softmax normalizes each column of z (one sample per column) into a probability distribution
func Softmax(z mat.Matrix) *mat.Dense {
	r, c := z.Dims()
	out := mat.NewDense(r, c, nil)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, z)
		out.SetCol(j, utils.Softmax(col))
	}
	return out
}

func checkLabel(label float64, nclasses int, i int) error {
	if label != math.Trunc(label) || label < 0 || label >= float64(nclasses) {
		return fmt.Errorf("%w: sample %d has label %v, expected an integer in [0, %d]",
			utils.ErrInvalidLabel, i, label, nclasses-1)
	}
	return nil
}

// OneHot returns the nclasses x len(y) matrix with a single 1 per column, at row y[j]
func OneHot(y []float64, nclasses int) (*mat.Dense, error) {
	if len(y) == 0 {
		return nil, fmt.Errorf("%w: empty label vector", utils.ErrShapeMismatch)
	}
	oh := mat.NewDense(nclasses, len(y), nil)
	for j, label := range y {
		if err := checkLabel(label, nclasses, j); err != nil {
			return nil, err
		}
		oh.Set(int(label), j, 1)
	}
	return oh, nil
}

// CrossEntropy returns the mean negative log probability a2 assigns to the true labels
func CrossEntropy(a2 mat.Matrix, y []float64) (float64, error) {
	nclasses, n := a2.Dims()
	if n != len(y) {
		return 0, fmt.Errorf("%w: %d samples for %d labels", utils.ErrShapeMismatch, n, len(y))
	}
	loss := 0.
	for j, label := range y {
		if err := checkLabel(label, nclasses, j); err != nil {
			return 0, err
		}
		loss -= math.Log(a2.At(int(label), j))
	}
	return loss / float64(n), nil
}
