package utils

import (
	"fmt"

	"go.dedis.ch/onet/v3/log"
	"gonum.org/v1/gonum/mat"
)

// ComputeAccuracy returns the fraction of positions where c[i] == y[i]
func ComputeAccuracy(c []float64, y []float64) (float64, error) {
	if len(c) != len(y) {
		return 0, fmt.Errorf("%w: %d predictions for %d labels", ErrShapeMismatch, len(c), len(y))
	}
	if len(y) == 0 {
		return 0, nil
	}

	accuracy := 0.
	for i := range y {
		if c[i] == y[i] {
			accuracy++
		}
	}
	return accuracy / float64(len(y)), nil
}

// ComputePrecisionRecall returns precision and recall of predictions c against labels y.
// With 2 classes class 1 is the positive class, otherwise the scores are micro or macro
// averaged over all classes. Classes without predictions (resp. support) are left out of
// the macro precision (resp. recall).
func ComputePrecisionRecall(c []float64, y []float64, numClass int, micro bool) (float64, float64, error) {
	if len(c) != len(y) {
		return 0, 0, fmt.Errorf("%w: %d predictions for %d labels", ErrShapeMismatch, len(c), len(y))
	}

	tp := make([]float64, numClass)
	fp := make([]float64, numClass)
	fn := make([]float64, numClass)
	for i := range y {
		pred, truth := int(c[i]), int(y[i])
		if pred < 0 || pred >= numClass || truth < 0 || truth >= numClass {
			continue
		}
		if pred == truth {
			tp[truth]++
		} else {
			fp[pred]++
			fn[truth]++
		}
	}

	if numClass == 2 {
		return ratio(tp[1], tp[1]+fp[1]), ratio(tp[1], tp[1]+fn[1]), nil
	}

	if micro {
		var stp, sfp, sfn float64
		for k := 0; k < numClass; k++ {
			stp += tp[k]
			sfp += fp[k]
			sfn += fn[k]
		}
		return ratio(stp, stp+sfp), ratio(stp, stp+sfn), nil
	}

	var precision, recall float64
	var np, nr int
	for k := 0; k < numClass; k++ {
		if tp[k]+fp[k] > 0 {
			precision += tp[k] / (tp[k] + fp[k])
			np++
		}
		if tp[k]+fn[k] > 0 {
			recall += tp[k] / (tp[k] + fn[k])
			nr++
		}
	}
	return ratio(precision, float64(np)), ratio(recall, float64(nr)), nil
}

func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// Classify returns, for each column of scores (one sample per column), the row index
// of its largest entry. Ties go to the lowest row.
func Classify(scores mat.Matrix) []float64 {
	r, c := scores.Dims()
	class := make([]float64, c)
	col := make([]float64, r)
	for j := range class {
		mat.Col(col, j, scores)
		class[j] = float64(Argmax(col))
	}
	return class
}

// Print_train_stats logs accuracy, precision and recall of the scores against y
func Print_train_stats(scores mat.Matrix, y []float64, nclass int, micro bool) error {
	classified := Classify(scores)
	accuracy, err := ComputeAccuracy(classified, y)
	if err != nil {
		return err
	}
	precision, recall, err := ComputePrecisionRecall(classified, y, nclass, micro)
	if err != nil {
		return err
	}

	log.Lvlf1("Accuracy: %.2f %%, precision: %.2f %%, recall: %.2f %%", 100*accuracy, 100*precision, 100*recall)
	return nil
}
