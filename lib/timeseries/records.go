// Package timeseries turns the cumulative series reported by the upstream
// api into daily metrics and long-form datasets. everything in here is
// pure, nothing touches the network.
package timeseries

import "time"

// CaseRecord is one country-day of cumulative counts. Active may be
// negative once the upstream stops reporting recoveries, it is stored as
// received and never clamped.
type CaseRecord struct {
	Country   string
	Date      time.Time
	Confirmed int64
	Deaths    int64
	Recovered int64
	Active    int64
}

// DerivedRecord extends CaseRecord with first-difference daily counts and
// the calendar parts of the date.
type DerivedRecord struct {
	CaseRecord
	NewCases  int64
	NewDeaths int64
	Year      int
	Month     int
	Day       int
}

// DeriveDaily computes daily deltas against a synthetic leading zero, so
// the first record's NewCases equals its cumulative count. within one
// ordered series the deltas always sum back to the final cumulative
// values. empty input yields empty output.
func DeriveDaily(history []CaseRecord) []DerivedRecord {
	out := make([]DerivedRecord, len(history))
	var prevConfirmed, prevDeaths int64
	for i, rec := range history {
		out[i] = DerivedRecord{
			CaseRecord: rec,
			NewCases:   rec.Confirmed - prevConfirmed,
			NewDeaths:  rec.Deaths - prevDeaths,
			Year:       rec.Date.Year(),
			Month:      int(rec.Date.Month()),
			Day:        rec.Date.Day(),
		}
		prevConfirmed = rec.Confirmed
		prevDeaths = rec.Deaths
	}
	return out
}
