package timeseries

import (
	"fmt"
	"sort"
	"time"
)

// Dataset is a long-form collection of derived records ordered by
// (country, date) with no duplicate country-day pairs.
type Dataset []DerivedRecord

// DuplicateKeyError reports the same country-day appearing more than once
// across merge inputs. this is a programming error, usually merging the
// same country twice, never bad user input.
type DuplicateKeyError struct {
	Country string
	Date    time.Time
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf(
		"duplicate record for %q on %s",
		e.Country, e.Date.Format(time.DateOnly),
	)
}

type recordKey struct {
	country string
	day     string
}

// Merge concatenates per-country histories into one dataset ordered by
// (country, date). it fails on the first duplicate country-day pair and
// returns nothing in that case.
func Merge(histories ...[]DerivedRecord) (Dataset, error) {
	total := 0
	for _, h := range histories {
		total += len(h)
	}

	out := make(Dataset, 0, total)
	seen := make(map[recordKey]struct{}, total)
	for _, h := range histories {
		for _, rec := range h {
			key := recordKey{
				country: rec.Country,
				day:     rec.Date.Format(time.DateOnly),
			}
			if _, dup := seen[key]; dup {
				return nil, &DuplicateKeyError{Country: rec.Country, Date: rec.Date}
			}
			seen[key] = struct{}{}
			out = append(out, rec)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Country != out[j].Country {
			return out[i].Country < out[j].Country
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

// Countries returns the distinct country names present, in dataset order.
func (ds Dataset) Countries() []string {
	var out []string
	last := ""
	for _, rec := range ds {
		if rec.Country != last {
			out = append(out, rec.Country)
			last = rec.Country
		}
	}
	return out
}
