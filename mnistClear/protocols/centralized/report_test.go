package centralized

import (
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	s, err := Summarize(nil)
	require.NoError(t, err)
	require.Equal(t, HistorySummary{}, s)

	s, err = Summarize([]EvalPoint{
		{Iteration: 0, Accuracy: 0.2},
		{Iteration: 10, Accuracy: 0.6},
		{Iteration: 20, Accuracy: 0.4},
	})
	require.NoError(t, err)
	require.Equal(t, 3, s.Points)
	require.InDelta(t, 0.4, s.Mean, 1e-12)
	require.InDelta(t, 0.6, s.Max, 1e-12)
	require.InDelta(t, 0.4, s.Last, 1e-12)
	require.InDelta(t, 0.163299, s.Std, 1e-6)
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.toml")
	r := Report{
		Nhidden:       20,
		Niter:         500,
		LearnRate:     0.2,
		Nsamples:      1000,
		Duration:      "1.5s",
		TrainAccuracy: 0.9,
		TestAccuracy:  0.85,
		History:       HistorySummary{Points: 50, Mean: 0.7, Last: 0.89},
	}
	require.NoError(t, WriteReport(path, r))

	var read Report
	_, err := toml.DecodeFile(path, &read)
	require.NoError(t, err)
	require.Equal(t, r.Niter, read.Niter)
	require.Equal(t, r.Duration, read.Duration)
	require.Equal(t, r.TestAccuracy, read.TestAccuracy)
	require.Equal(t, r.History.Points, read.History.Points)
}
