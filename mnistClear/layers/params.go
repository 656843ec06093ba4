package layers

import (
	"fmt"
	"math/rand"

	"github.com/ldsec/mnistNN/mnistClear/utils"
	"gonum.org/v1/gonum/mat"
)

// Parameters of the two layer network
type Parameters struct {
	W1 *mat.Dense    // nhidden x ninputs
	B1 *mat.VecDense // nhidden
	W2 *mat.Dense    // nclasses x nhidden
	B2 *mat.VecDense // nclasses
}

// Gradients of the loss with respect to each field of Parameters, same shapes
type Gradients struct {
	DW1 *mat.Dense
	DB1 *mat.VecDense
	DW2 *mat.Dense
	DB2 *mat.VecDense
}

// InitParameters draws every weight and bias uniformly in [-0.5, 0.5) from rnd
func InitParameters(nhidden, ninputs, nclasses int, rnd *rand.Rand) (*Parameters, error) {
	if nhidden <= 0 || ninputs <= 0 || nclasses <= 0 {
		return nil, fmt.Errorf("%w: cannot build %dx%d and %dx%d layers",
			utils.ErrShapeMismatch, nhidden, ninputs, nclasses, nhidden)
	}

	p := &Parameters{}
	p.W1 = mat.NewDense(nhidden, ninputs, utils.RandomFill(rnd, nhidden*ninputs, -0.5, 0.5))
	p.B1 = mat.NewVecDense(nhidden, utils.RandomFill(rnd, nhidden, -0.5, 0.5))
	p.W2 = mat.NewDense(nclasses, nhidden, utils.RandomFill(rnd, nclasses*nhidden, -0.5, 0.5))
	p.B2 = mat.NewVecDense(nclasses, utils.RandomFill(rnd, nclasses, -0.5, 0.5))
	return p, nil
}

// Dims returns the hidden width, the input size and the number of classes
func (p *Parameters) Dims() (nhidden, ninputs, nclasses int) {
	nhidden, ninputs = p.W1.Dims()
	nclasses, _ = p.W2.Dims()
	return
}

// Check verifies that the four tensors fit together
func (p *Parameters) Check() error {
	h, _ := p.W1.Dims()
	c, h2 := p.W2.Dims()
	if h != h2 || p.B1.Len() != h || p.B2.Len() != c {
		return fmt.Errorf("%w: W1 has %d rows, b1 %d, W2 is %dx%d, b2 %d",
			utils.ErrShapeMismatch, h, p.B1.Len(), c, h2, p.B2.Len())
	}
	return nil
}

// Clone returns a deep copy of p
func (p *Parameters) Clone() *Parameters {
	return &Parameters{
		W1: mat.DenseCopyOf(p.W1),
		B1: mat.VecDenseCopyOf(p.B1),
		W2: mat.DenseCopyOf(p.W2),
		B2: mat.VecDenseCopyOf(p.B2),
	}
}

// Equal reports whether p and q hold exactly the same values
func (p *Parameters) Equal(q *Parameters) bool {
	return mat.Equal(p.W1, q.W1) && mat.Equal(p.B1, q.B1) &&
		mat.Equal(p.W2, q.W2) && mat.Equal(p.B2, q.B2)
}
