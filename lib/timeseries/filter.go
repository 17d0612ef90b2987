package timeseries

import "sort"

// Filter selects a subset of a dataset. zero values match everything, so
// the empty filter is the identity. DayFrom/DayTo are inclusive bounds on
// the day-of-month, a zero DayTo means "no upper bound".
type Filter struct {
	Country string
	Year    int
	Month   int
	DayFrom int
	DayTo   int
}

func (f Filter) matches(rec DerivedRecord) bool {
	if f.Country != "" && rec.Country != f.Country {
		return false
	}
	if f.Year != 0 && rec.Year != f.Year {
		return false
	}
	if f.Month != 0 && rec.Month != f.Month {
		return false
	}
	if f.DayFrom != 0 && rec.Day < f.DayFrom {
		return false
	}
	if f.DayTo != 0 && rec.Day > f.DayTo {
		return false
	}
	return true
}

// Filter returns the matching records ordered by date ascending, with
// country as the tiebreaker. missing values are NOT excluded here, tables
// built from filtered subsets show rows exactly as reported upstream.
func (ds Dataset) Filter(f Filter) Dataset {
	var out Dataset
	for _, rec := range ds {
		if f.matches(rec) {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Country < out[j].Country
	})
	return out
}
