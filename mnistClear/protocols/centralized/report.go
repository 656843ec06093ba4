package centralized

import (
	"io/ioutil"

	"github.com/montanaflynn/stats"
	"github.com/pelletier/go-toml"
)

// HistorySummary describes the accuracies logged during training
type HistorySummary struct {
	Points int     `toml:"points"`
	Mean   float64 `toml:"mean_accuracy"`
	Std    float64 `toml:"std_accuracy"`
	Max    float64 `toml:"max_accuracy"`
	Last   float64 `toml:"last_accuracy"`
}

// Summarize computes the statistics of the logged accuracies, all zero for an empty history
func Summarize(history []EvalPoint) (HistorySummary, error) {
	if len(history) == 0 {
		return HistorySummary{}, nil
	}
	acc := make(stats.Float64Data, len(history))
	for i, p := range history {
		acc[i] = p.Accuracy
	}

	var s HistorySummary
	var err error
	s.Points = len(acc)
	s.Last = acc[len(acc)-1]
	if s.Mean, err = stats.Mean(acc); err != nil {
		return HistorySummary{}, err
	}
	if s.Std, err = stats.StandardDeviation(acc); err != nil {
		return HistorySummary{}, err
	}
	if s.Max, err = stats.Max(acc); err != nil {
		return HistorySummary{}, err
	}
	return s, nil
}

// Report of a training run
type Report struct {
	Nhidden   int     `toml:"nhidden"`
	Niter     int     `toml:"niter"`
	LearnRate float64 `toml:"learn_rate"`
	Seed      int64   `toml:"seed"`
	Nsamples  int     `toml:"nsamples"`
	Duration  string  `toml:"duration"`

	TrainAccuracy float64 `toml:"train_accuracy"`
	TestAccuracy  float64 `toml:"test_accuracy"`
	TestPrecision float64 `toml:"test_precision"`
	TestRecall    float64 `toml:"test_recall"`
	TestFscore    float64 `toml:"test_fscore"`

	History HistorySummary `toml:"history"`
}

// WriteReport writes r as TOML to path
func WriteReport(path string, r Report) error {
	b, err := toml.Marshal(r)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, b, 0644)
}
