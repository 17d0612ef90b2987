package timeseries

import (
	"fmt"
	"math"
	"sort"
)

// Summary holds descriptive statistics over one numeric column.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	StdDev float64
	Q1     float64
	Q3     float64
	IQR    float64
	Max    float64
}

// Summarize computes descriptive statistics over a value slice. NaN
// entries are dropped before anything else is computed, which mirrors how
// the summary tables exclude missing values from spread and quantile
// statistics. a single remaining value yields StdDev 0 and IQR 0, an
// empty input yields the zero Summary.
func Summarize(values []float64) Summary {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		clean = append(clean, v)
	}
	if len(clean) == 0 {
		return Summary{}
	}
	sort.Float64s(clean)

	sum := 0.0
	for _, v := range clean {
		sum += v
	}
	mean := sum / float64(len(clean))

	// sample standard deviation, matching R's sd()
	stddev := 0.0
	if len(clean) > 1 {
		var sqsum float64
		for _, v := range clean {
			d := v - mean
			sqsum += d * d
		}
		stddev = math.Sqrt(sqsum / float64(len(clean)-1))
	}

	q1 := quantile(clean, 0.25)
	q3 := quantile(clean, 0.75)
	return Summary{
		Count:  len(clean),
		Mean:   mean,
		Median: quantile(clean, 0.5),
		StdDev: stddev,
		Q1:     q1,
		Q3:     q3,
		IQR:    q3 - q1,
		Max:    clean[len(clean)-1],
	}
}

// quantile interpolates linearly between order statistics over an
// already-sorted slice (the same scheme as R's default quantile type 7).
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	frac := pos - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// SummarizeColumn runs Summarize over one named column of the dataset.
func (ds Dataset) SummarizeColumn(field string) (Summary, error) {
	values, err := ds.Column(field)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(values), nil
}

// SummarizeByCountry computes per-country summaries of one named column,
// keyed by country name.
func (ds Dataset) SummarizeByCountry(field string) (map[string]Summary, error) {
	col, ok := derivedColumns[field]
	if !ok {
		return nil, fmt.Errorf("unknown field %q", field)
	}

	grouped := make(map[string][]float64)
	for _, rec := range ds {
		grouped[rec.Country] = append(grouped[rec.Country], float64(col(rec)))
	}
	out := make(map[string]Summary, len(grouped))
	for country, values := range grouped {
		out[country] = Summarize(values)
	}
	return out, nil
}
