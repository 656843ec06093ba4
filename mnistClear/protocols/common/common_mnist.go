package common

import (
	"errors"
	"fmt"

	"github.com/ldsec/mnistNN/mnistClear/utils"
	"go.dedis.ch/onet/v3/log"
	"gonum.org/v1/gonum/mat"
)

// MnistDataset holds one sample per column of X and its label in Y
type MnistDataset struct {
	X *mat.Dense // NINPUTS x nsamples
	Y []float64
}

// NSamples returns the number of samples of the dataset
func (dataset *MnistDataset) NSamples() int {
	return len(dataset.Y)
}

// LoadMnistCSV loads nsamples rows (all if nsamples <= 0) of a MNIST csv file and divides
// the pixels by the largest intensity found in it
func LoadMnistCSV(path string, nsamples int, header bool) (MnistDataset, error) {
	n := nsamples
	if header && n > 0 {
		n++
	}
	lines, err := utils.Load_file(path, n)
	if err != nil {
		return MnistDataset{}, err
	}
	if header && len(lines) > 0 {
		lines = lines[1:]
	}

	X, y, err := utils.Convert_X_mnist(lines, NINPUTS)
	if err != nil {
		return MnistDataset{}, fmt.Errorf("%s: %w", path, err)
	}
	if max := utils.Normalize(X); max <= 0 {
		log.Warn("every pixel of", path, "is zero, features left as is")
	}
	log.Lvl2("Loaded", len(y), "samples from", path)

	return MnistDataset{X: X, Y: y}, nil
}

// columns returns the samples of dataset at the given indexes
func (dataset *MnistDataset) columns(idx []int) MnistDataset {
	r, _ := dataset.X.Dims()
	X := mat.NewDense(r, len(idx), nil)
	Y := make([]float64, len(idx))
	col := make([]float64, r)
	for k, j := range idx {
		mat.Col(col, j, dataset.X)
		X.SetCol(k, col)
		Y[k] = dataset.Y[j]
	}
	return MnistDataset{X: X, Y: Y}
}

// Partition split dataset's samples into n groups, return (trainData, testData) where
// testData is group testGroup and trainData every other sample
func (dataset *MnistDataset) Partition(numberOfGroup, testGroup uint) (MnistDataset, MnistDataset, error) {
	if numberOfGroup == 0 {
		return MnistDataset{}, MnistDataset{}, errors.New("number of group is 0")
	}
	// no kfold:
	if numberOfGroup == 1 {
		return *dataset, *dataset, nil
	}
	if numberOfGroup <= testGroup {
		return MnistDataset{}, MnistDataset{}, errors.New("currentGroup is greater than number of group")
	}

	nsamples := uint(dataset.NSamples())
	groupSize := nsamples / numberOfGroup
	if groupSize == 0 {
		return MnistDataset{}, MnistDataset{}, errors.New("numberOfGroup is greater than number of samples")
	}

	startTest, endTest := groupSize*testGroup, groupSize*(testGroup+1)

	trainIdx := make([]int, 0, nsamples-groupSize)
	testIdx := make([]int, 0, groupSize)
	for j := uint(0); j < nsamples; j++ {
		if j >= startTest && j < endTest {
			testIdx = append(testIdx, int(j))
		} else {
			trainIdx = append(trainIdx, int(j))
		}
	}

	return dataset.columns(trainIdx), dataset.columns(testIdx), nil
}
