package utils

import (
	"errors"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Histogram saves the distribution of v as filename.png
func Histogram(v []float64, filename string) error {
	if len(v) == 0 {
		return errors.New("histogram of empty slice")
	}

	n := int(math.Sqrt(float64(len(v))))
	if n < 1 {
		n = 1
	}
	vals := plotter.Values(v)

	p := plot.New()
	p.Title.Text = "weights histogram"

	h, err := plotter.NewHist(vals, n)
	if err != nil {
		return err
	}
	p.Add(h)

	return p.Save(4*vg.Inch, 4*vg.Inch, filename+".png")
}

// PlotHistory saves the logged accuracy and loss against the iteration as filename.png
func PlotHistory(iterations, accuracy, loss []float64, filename string) error {
	if len(iterations) != len(accuracy) || len(iterations) != len(loss) {
		return ErrShapeMismatch
	}

	acc := make(plotter.XYs, len(iterations))
	xent := make(plotter.XYs, len(iterations))
	for i := range iterations {
		acc[i].X, acc[i].Y = iterations[i], accuracy[i]
		xent[i].X, xent[i].Y = iterations[i], loss[i]
	}

	p := plot.New()
	p.Title.Text = "training"
	p.X.Label.Text = "iteration"

	if err := plotutil.AddLinePoints(p, "accuracy", acc, "loss", xent); err != nil {
		return err
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, filename+".png")
}
