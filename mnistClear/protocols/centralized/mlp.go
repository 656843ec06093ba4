package centralized

import (
	"fmt"
	"math/rand"

	"github.com/ldsec/mnistNN/mnistClear/layers"
	"github.com/ldsec/mnistNN/mnistClear/protocols/common"
	"github.com/ldsec/mnistNN/mnistClear/utils"
	"go.dedis.ch/onet/v3/log"
	"gonum.org/v1/gonum/mat"
)

// EvalPoint is the accuracy and loss logged at a given iteration
type EvalPoint struct {
	Iteration int
	Accuracy  float64
	Loss      float64
}

// TrainResult holds the trained parameters and the logged evaluations
type TrainResult struct {
	Params  *layers.Parameters
	History []EvalPoint
}

// Train runs niter full-batch gradient descent steps on the samples in the columns of X
// and returns the trained parameters
func Train(X *mat.Dense, y []float64, niter int, learnRate float64, nhidden int, seed int64) (*layers.Parameters, error) {
	sts := common.NewMnistSettings()
	sts.Niter = niter
	sts.LearnRate = learnRate
	sts.Nhidden = nhidden
	sts.Seed = seed

	res, err := TrainWithSettings(X, y, sts)
	if err != nil {
		return nil, err
	}
	return res.Params, nil
}

// TrainWithSettings trains a network on X, y with the hyperparameters of sts.
// Every sts.LogEvery iterations the accuracy and loss of the current forward pass are logged
// and appended to the history. They are computed before the update of that iteration, so
// they lag the returned parameters by one step.
func TrainWithSettings(X *mat.Dense, y []float64, sts *common.MnistSettings) (*TrainResult, error) {
	if err := sts.Validate(); err != nil {
		return nil, err
	}
	r, nsamples := X.Dims()
	if r != common.NINPUTS || nsamples != len(y) {
		return nil, fmt.Errorf("%w: X is %dx%d for %d labels, expected %d rows",
			utils.ErrShapeMismatch, r, nsamples, len(y), common.NINPUTS)
	}

	rnd := rand.New(rand.NewSource(sts.Seed))
	params, err := layers.InitParameters(sts.Nhidden, common.NINPUTS, common.NCLASSES, rnd)
	if err != nil {
		return nil, err
	}

	res := &TrainResult{Params: params}
	for i := 0; i < sts.Niter; i++ {
		cache, err := layers.Forward(params, X)
		if err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i, err)
		}

		if sts.LogEvery > 0 && i%sts.LogEvery == 0 {
			point, err := evaluate(i, cache, y, sts.Micro)
			if err != nil {
				return nil, fmt.Errorf("iteration %d: %w", i, err)
			}
			res.History = append(res.History, point)
		}

		grads, err := layers.Backward(cache, params.W2, X, y)
		if err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i, err)
		}
		if err := layers.Update(params, grads, sts.LearnRate); err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i, err)
		}
	}

	return res, nil
}

func evaluate(i int, cache *layers.ForwardCache, y []float64, micro bool) (EvalPoint, error) {
	accuracy, err := Accuracy(utils.Classify(cache.A2), y)
	if err != nil {
		return EvalPoint{}, err
	}
	loss, err := layers.CrossEntropy(cache.A2, y)
	if err != nil {
		return EvalPoint{}, err
	}

	log.Lvlf1("Iteration: %d, loss: %.4f", i, loss)
	if err := utils.Print_train_stats(cache.A2, y, common.NCLASSES, micro); err != nil {
		return EvalPoint{}, err
	}
	return EvalPoint{Iteration: i, Accuracy: accuracy, Loss: loss}, nil
}

// Predict returns the predicted class of each sample (column) of X
func Predict(p *layers.Parameters, X mat.Matrix) ([]float64, error) {
	cache, err := layers.Forward(p, X)
	if err != nil {
		return nil, err
	}
	return utils.Classify(cache.A2), nil
}

// Accuracy returns the fraction of predictions equal to the labels y
func Accuracy(predictions, y []float64) (float64, error) {
	return utils.ComputeAccuracy(predictions, y)
}

// RunMnistPredictionTest returns the accuracy, precision, recall and f-score of p on X, y
func RunMnistPredictionTest(p *layers.Parameters, X mat.Matrix, y []float64, micro bool) (float64, float64, float64, float64, error) {
	classified, err := Predict(p, X)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	accuracy, err := utils.ComputeAccuracy(classified, y)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	precision, recall, err := utils.ComputePrecisionRecall(classified, y, common.NCLASSES, micro)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	fscore := 0.
	if precision+recall > 0 {
		fscore = 2 * precision * recall / (precision + recall)
	}
	return accuracy, precision, recall, fscore, nil
}
