package timeseries

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{1, 2, 3, 4})
	require.Equal(t, 4, s.Count)
	require.InDelta(t, 2.5, s.Mean, 1e-9)
	require.InDelta(t, 2.5, s.Median, 1e-9)
	require.InDelta(t, 1.2909944487, s.StdDev, 1e-9)
	require.InDelta(t, 1.75, s.Q1, 1e-9)
	require.InDelta(t, 3.25, s.Q3, 1e-9)
	require.InDelta(t, 1.5, s.IQR, 1e-9)
	require.InDelta(t, 4, s.Max, 1e-9)
}

func TestSummarizeSingleElement(t *testing.T) {
	s := Summarize([]float64{42})
	require.Equal(t, 1, s.Count)
	require.InDelta(t, 42, s.Mean, 1e-9)
	require.InDelta(t, 42, s.Median, 1e-9)
	require.Zero(t, s.StdDev)
	require.Zero(t, s.IQR)
	require.InDelta(t, 42, s.Max, 1e-9)
}

func TestSummarizeExcludesNaN(t *testing.T) {
	s := Summarize([]float64{1, math.NaN(), 3, math.NaN()})
	require.Equal(t, 2, s.Count)
	require.InDelta(t, 2, s.Mean, 1e-9)
	require.InDelta(t, 3, s.Max, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	require.Equal(t, Summary{}, Summarize(nil))
	require.Equal(t, Summary{}, Summarize([]float64{math.NaN()}))
}

func TestSummarizeColumn(t *testing.T) {
	dataset, err := Merge(DeriveDaily(history(t, "Philippines", "2020-01-30", 0, 0, 5, 5, 12)))
	require.NoError(t, err)

	s, err := dataset.SummarizeColumn(FieldNewCases)
	require.NoError(t, err)
	require.Equal(t, 5, s.Count)
	require.InDelta(t, 7, s.Max, 1e-9)

	_, err = dataset.SummarizeColumn("Bogus")
	require.Error(t, err)
}

func TestSummarizeByCountry(t *testing.T) {
	dataset, err := Merge(
		DeriveDaily(history(t, "Philippines", "2020-01-30", 1, 2, 3)),
		DeriveDaily(history(t, "Mexico", "2020-02-28", 10, 30)),
	)
	require.NoError(t, err)

	summaries, err := dataset.SummarizeByCountry(FieldConfirmed)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	require.InDelta(t, 2, summaries["Philippines"].Mean, 1e-9)
	require.InDelta(t, 20, summaries["Mexico"].Mean, 1e-9)
}

func TestColumnUnknownField(t *testing.T) {
	var dataset Dataset
	_, err := dataset.Column("NotAField")
	require.Error(t, err)
}
