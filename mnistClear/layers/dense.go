package layers

import (
	"fmt"

	"github.com/ldsec/mnistNN/mnistClear/utils"
	"gonum.org/v1/gonum/mat"
)

// ForwardCache holds the intermediates of one forward pass
type ForwardCache struct {
	Z1 *mat.Dense // nhidden x nsamples
	A1 *mat.Dense // nhidden x nsamples
	Z2 *mat.Dense // nclasses x nsamples
	A2 *mat.Dense // nclasses x nsamples
}

// addBias adds b[i] to every entry of row i of z
func addBias(z *mat.Dense, b *mat.VecDense) {
	z.Apply(func(i, j int, v float64) float64 {
		return v + b.AtVec(i)
	}, z)
}

// rowSum returns the vector of the sums of each row of m, scaled by k
func rowSum(m *mat.Dense, k float64) *mat.VecDense {
	r, c := m.Dims()
	ones := make([]float64, c)
	for i := range ones {
		ones[i] = 1
	}
	v := mat.NewVecDense(r, nil)
	v.MulVec(m, mat.NewVecDense(c, ones))
	v.ScaleVec(k, v)
	return v
}

// Forward computes the activations of both layers for the samples in the columns of X
func Forward(p *Parameters, X mat.Matrix) (*ForwardCache, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}
	nhidden, ninputs, nclasses := p.Dims()
	r, nsamples := X.Dims()
	if r != ninputs {
		return nil, fmt.Errorf("%w: input has %d rows, W1 expects %d", utils.ErrShapeMismatch, r, ninputs)
	}

	cache := &ForwardCache{}
	cache.Z1 = mat.NewDense(nhidden, nsamples, nil)
	cache.Z1.Mul(p.W1, X)
	addBias(cache.Z1, p.B1)

	var err error
	if cache.A1, err = Relu(cache.Z1); err != nil {
		return nil, err
	}

	cache.Z2 = mat.NewDense(nclasses, nsamples, nil)
	cache.Z2.Mul(p.W2, cache.A1)
	addBias(cache.Z2, p.B2)

	cache.A2 = Softmax(cache.Z2)
	return cache, nil
}

// Backward returns the gradients of the softmax cross-entropy loss of the batch X, y
// through the relu hidden layer, averaged over the len(y) samples of the batch
func Backward(cache *ForwardCache, W2 *mat.Dense, X mat.Matrix, y []float64) (*Gradients, error) {
	nclasses, nsamples := cache.A2.Dims()
	nhidden, n1 := cache.A1.Dims()
	ninputs, nx := X.Dims()
	wr, wc := W2.Dims()
	if nsamples != len(y) || n1 != nsamples || nx != nsamples {
		return nil, fmt.Errorf("%w: %d labels, A2 has %d columns, A1 %d, X %d",
			utils.ErrShapeMismatch, len(y), nsamples, n1, nx)
	}
	if zr, zc := cache.Z1.Dims(); zr != nhidden || zc != nsamples {
		return nil, fmt.Errorf("%w: Z1 is %dx%d, A1 is %dx%d", utils.ErrShapeMismatch, zr, zc, nhidden, nsamples)
	}
	if wr != nclasses || wc != nhidden {
		return nil, fmt.Errorf("%w: W2 is %dx%d, expected %dx%d", utils.ErrShapeMismatch, wr, wc, nclasses, nhidden)
	}

	oneHot, err := OneHot(y, nclasses)
	if err != nil {
		return nil, err
	}
	m := 1 / float64(nsamples)

	dZ2 := mat.NewDense(nclasses, nsamples, nil)
	dZ2.Sub(cache.A2, oneHot)

	g := &Gradients{}
	g.DW2 = mat.NewDense(nclasses, nhidden, nil)
	g.DW2.Mul(dZ2, cache.A1.T())
	g.DW2.Scale(m, g.DW2)
	g.DB2 = rowSum(dZ2, m)

	dRelu, err := ReluD(cache.Z1)
	if err != nil {
		return nil, err
	}
	dZ1 := mat.NewDense(nhidden, nsamples, nil)
	dZ1.Mul(W2.T(), dZ2)
	dZ1.MulElem(dZ1, dRelu)

	g.DW1 = mat.NewDense(nhidden, ninputs, nil)
	g.DW1.Mul(dZ1, X.T())
	g.DW1.Scale(m, g.DW1)
	g.DB1 = rowSum(dZ1, m)

	return g, nil
}
