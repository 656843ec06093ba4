package layers

import (
	"fmt"

	"github.com/ldsec/mnistNN/mnistClear/utils"
	"gonum.org/v1/gonum/mat"
)

func sameShape(a, b mat.Matrix) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	return ar == br && ac == bc
}

// Update performs one gradient descent step in place: W <- W - learnRate*dW, b <- b - learnRate*db
func Update(p *Parameters, g *Gradients, learnRate float64) error {
	if !sameShape(p.W1, g.DW1) || !sameShape(p.B1, g.DB1) || !sameShape(p.W2, g.DW2) || !sameShape(p.B2, g.DB2) {
		return fmt.Errorf("%w: gradients do not match parameters", utils.ErrShapeMismatch)
	}

	var step mat.Dense
	step.Scale(learnRate, g.DW1)
	p.W1.Sub(p.W1, &step)
	p.B1.AddScaledVec(p.B1, -learnRate, g.DB1)

	step.Reset()
	step.Scale(learnRate, g.DW2)
	p.W2.Sub(p.W2, &step)
	p.B2.AddScaledVec(p.B2, -learnRate, g.DB2)

	return nil
}
