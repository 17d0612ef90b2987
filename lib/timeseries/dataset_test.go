package timeseries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMergeDisjointCountries(t *testing.T) {
	ph := DeriveDaily(history(t, "Philippines", "2020-01-30", 1, 2, 3))
	cn := DeriveDaily(history(t, "China", "2020-01-22", 548, 643))

	dataset, err := Merge(ph, cn)
	require.NoError(t, err)
	require.Len(t, dataset, 5)
	require.Equal(t, []string{"China", "Philippines"}, dataset.Countries())

	// ordered by (country, date)
	for i := 1; i < len(dataset); i++ {
		prev, cur := dataset[i-1], dataset[i]
		if prev.Country == cur.Country {
			require.True(t, prev.Date.Before(cur.Date))
		} else {
			require.Less(t, prev.Country, cur.Country)
		}
	}
}

func TestMergeDuplicateKey(t *testing.T) {
	ph := DeriveDaily(history(t, "Philippines", "2020-01-30", 1, 2, 3))

	_, err := Merge(ph, ph)
	var dup *DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "Philippines", dup.Country)
}

func TestMergeEmpty(t *testing.T) {
	dataset, err := Merge()
	require.NoError(t, err)
	require.Empty(t, dataset)
}

func TestFilter(t *testing.T) {
	ph := DeriveDaily(history(
		t, "Philippines", "2021-09-20",
		1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12,
	))
	mx := DeriveDaily(history(t, "Mexico", "2021-09-24", 1, 2, 3))
	dataset, err := Merge(ph, mx)
	require.NoError(t, err)

	filtered := dataset.Filter(Filter{
		Country: "Philippines",
		Year:    2021,
		Month:   9,
		DayFrom: 24,
		DayTo:   30,
	})
	require.LessOrEqual(t, len(filtered), 7)
	require.Len(t, filtered, 7)
	for i, rec := range filtered {
		require.Equal(t, "Philippines", rec.Country)
		require.Equal(t, 2021, rec.Year)
		require.Equal(t, 9, rec.Month)
		require.Equal(t, 24+i, rec.Day)
		if i > 0 {
			require.True(t, filtered[i-1].Date.Before(rec.Date))
		}
	}
}

func TestFilterZeroValueIsIdentity(t *testing.T) {
	dataset, err := Merge(DeriveDaily(history(t, "Canada", "2020-03-01", 1, 2)))
	require.NoError(t, err)
	require.Len(t, dataset.Filter(Filter{}), 2)
}

func TestDuplicateKeyErrorMessage(t *testing.T) {
	err := &DuplicateKeyError{
		Country: "Philippines",
		Date:    time.Date(2021, 9, 24, 0, 0, 0, 0, time.UTC),
	}
	require.Contains(t, err.Error(), "Philippines")
	require.Contains(t, err.Error(), "2021-09-24")
}
