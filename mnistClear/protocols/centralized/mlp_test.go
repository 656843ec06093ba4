package centralized

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/ldsec/mnistNN/mnistClear/layers"
	"github.com/ldsec/mnistNN/mnistClear/protocols/common"
	"github.com/ldsec/mnistNN/mnistClear/utils"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// separableData returns nsamples samples where class c lights up its own block of pixels
func separableData(nsamples int) (*mat.Dense, []float64) {
	block := common.NINPUTS / common.NCLASSES
	X := mat.NewDense(common.NINPUTS, nsamples, nil)
	y := make([]float64, nsamples)
	for j := 0; j < nsamples; j++ {
		c := j % common.NCLASSES
		y[j] = float64(c)
		for i := c * block; i < (c+1)*block; i++ {
			X.Set(i, j, 1)
		}
	}
	return X, y
}

func TestTrainDeterministic(t *testing.T) {
	X, y := separableData(20)

	p1, err := Train(X, y, 25, 0.2, 8, 3)
	require.NoError(t, err)
	p2, err := Train(X, y, 25, 0.2, 8, 3)
	require.NoError(t, err)
	require.True(t, p1.Equal(p2))

	p3, err := Train(X, y, 25, 0.2, 8, 4)
	require.NoError(t, err)
	require.False(t, p1.Equal(p3))
}

func TestTrainImprovesAccuracy(t *testing.T) {
	X, y := separableData(40)

	p0, err := Train(X, y, 0, 0.2, common.NHIDDEN, 1)
	require.NoError(t, err)
	pred, err := Predict(p0, X)
	require.NoError(t, err)
	before, err := Accuracy(pred, y)
	require.NoError(t, err)

	p, err := Train(X, y, 500, 0.2, common.NHIDDEN, 1)
	require.NoError(t, err)
	pred, err = Predict(p, X)
	require.NoError(t, err)
	after, err := Accuracy(pred, y)
	require.NoError(t, err)

	require.Greater(t, after, before)
}

func TestTrainZeroIterationsReturnsInitialParameters(t *testing.T) {
	X, y := separableData(10)
	p, err := Train(X, y, 0, 0.2, 5, 11)
	require.NoError(t, err)

	initial, err := layers.InitParameters(5, common.NINPUTS, common.NCLASSES, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	require.True(t, p.Equal(initial))
}

func TestHistoryLagsUpdate(t *testing.T) {
	X, y := separableData(20)
	sts := common.NewMnistSettings()
	sts.Niter = 12
	sts.LogEvery = 5
	sts.Seed = 2

	res, err := TrainWithSettings(X, y, sts)
	require.NoError(t, err)
	require.Len(t, res.History, 3)
	for k, point := range res.History {
		require.Equal(t, 5*k, point.Iteration)
		require.True(t, point.Accuracy >= 0 && point.Accuracy <= 1)
	}

	// the point logged at iteration 0 is computed with the initial, not yet updated, parameters
	initial, err := layers.InitParameters(sts.Nhidden, common.NINPUTS, common.NCLASSES, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	pred, err := Predict(initial, X)
	require.NoError(t, err)
	acc, err := Accuracy(pred, y)
	require.NoError(t, err)
	require.Equal(t, acc, res.History[0].Accuracy)

	sts.LogEvery = 0
	res, err = TrainWithSettings(X, y, sts)
	require.NoError(t, err)
	require.Empty(t, res.History)
}

func TestTrainErrors(t *testing.T) {
	X, y := separableData(10)

	_, err := Train(X, y[:9], 5, 0.2, 5, 0)
	require.True(t, errors.Is(err, utils.ErrShapeMismatch))

	_, err = Train(mat.NewDense(10, 10, nil), y, 5, 0.2, 5, 0)
	require.True(t, errors.Is(err, utils.ErrShapeMismatch))

	bad := append([]float64{}, y...)
	bad[3] = 12
	_, err = Train(X, bad, 5, 0.2, 5, 0)
	require.True(t, errors.Is(err, utils.ErrInvalidLabel))

	_, err = Train(X, y, 5, -0.2, 5, 0)
	require.Error(t, err)
}

func TestRunMnistPredictionTest(t *testing.T) {
	X, y := separableData(30)
	p, err := Train(X, y, 300, 0.2, common.NHIDDEN, 5)
	require.NoError(t, err)

	accuracy, precision, recall, fscore, err := RunMnistPredictionTest(p, X, y, false)
	require.NoError(t, err)
	for _, v := range []float64{accuracy, precision, recall, fscore} {
		require.True(t, v >= 0 && v <= 1)
	}

	_, _, _, _, err = RunMnistPredictionTest(p, X, y[:2], false)
	require.True(t, errors.Is(err, utils.ErrShapeMismatch))
}
