package common

import (
	"errors"

	"github.com/BurntSushi/toml"
	"go.dedis.ch/onet/v3/log"
)

// MnistSettings store the training hyperparameters and the run inputs and outputs
type MnistSettings struct {
	Nhidden   int     `toml:"nhidden"`
	Niter     int     `toml:"niter"`
	LearnRate float64 `toml:"learn_rate"`
	LogEvery  int     `toml:"log_every"`
	Seed      int64   `toml:"seed"`
	Micro     bool    `toml:"micro"`
	Debug     int     `toml:"debug"`

	TrainFile string `toml:"train_file"`
	TestFile  string `toml:"test_file"`
	Nsamples  int    `toml:"nsamples"`
	Header    bool   `toml:"header"`
	// number of groups for the hold-out split when no test file is given
	KFold uint `toml:"kfold"`

	ReportFile    string `toml:"report_file"`
	PlotFile      string `toml:"plot_file"`
	HistogramFile string `toml:"histogram_file"`
}

// NewMnistSettings returns the reference configuration
func NewMnistSettings() *MnistSettings {
	return &MnistSettings{
		Nhidden:   NHIDDEN,
		Niter:     NITER,
		LearnRate: LEARN_RATE,
		LogEvery:  LOG_EVERY,
		Seed:      SEED,
		Micro:     MICRO,
		Debug:     1,
		Header:    true,
		KFold:     1,
	}
}

// LoadSettings reads a TOML file over the reference configuration
func LoadSettings(path string) (*MnistSettings, error) {
	sts := NewMnistSettings()
	md, err := toml.DecodeFile(path, sts)
	if err != nil {
		return nil, err
	}
	for _, key := range md.Undecoded() {
		log.Warn("unknown setting", key.String(), "in", path)
	}
	return sts, sts.Validate()
}

func (sts *MnistSettings) Validate() error {
	if sts.Nhidden <= 0 {
		return errors.New("nhidden must be positive")
	}
	if sts.Niter < 0 {
		return errors.New("niter cannot be negative")
	}
	if sts.LearnRate <= 0 {
		return errors.New("learn_rate must be positive")
	}
	if sts.LogEvery < 0 {
		return errors.New("log_every cannot be negative")
	}
	return nil
}
