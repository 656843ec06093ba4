package common

// mnist network parameters
const NINPUTS = 784
const NCLASSES = 10
const NHIDDEN = 20
const NITER = 500
const LEARN_RATE = 0.2
const LOG_EVERY = 10
const SEED = 0

var MICRO = false

type Loader interface {
	Load() (MnistDataset, error)
}

// CsvLoader loads a MNIST csv file, "label,p0,...,p783" per line
type CsvLoader struct {
	Path     string
	Nsamples int
	Header   bool
}

func (c CsvLoader) Load() (MnistDataset, error) {
	return LoadMnistCSV(c.Path, c.Nsamples, c.Header)
}

func GetLoader(sts *MnistSettings) (Loader, error) {
	return CsvLoader{Path: sts.TrainFile, Nsamples: sts.Nsamples, Header: sts.Header}, nil
}

// GetTestLoader returns nil when no test file is configured
func GetTestLoader(sts *MnistSettings) (Loader, error) {
	if sts.TestFile == "" {
		return nil, nil
	}
	return CsvLoader{Path: sts.TestFile, Nsamples: sts.Nsamples, Header: sts.Header}, nil
}
