package casestore

import (
	"context"
	"testing"
	"time"

	"covidtrends-backend/lib/testutil"
	"covidtrends-backend/lib/timeseries"
	"covidtrends-backend/services/casestore/db"

	"github.com/stretchr/testify/require"
)

func derivedFixture(country string, start time.Time, confirmed ...int64) []timeseries.DerivedRecord {
	records := make([]timeseries.CaseRecord, len(confirmed))
	for i, c := range confirmed {
		records[i] = timeseries.CaseRecord{
			Country:   country,
			Date:      start.AddDate(0, 0, i),
			Confirmed: c,
			Deaths:    c / 5,
			Recovered: c / 2,
			Active:    c - c/5 - c/2,
		}
	}
	return timeseries.DeriveDaily(records)
}

func TestReplaceAndPull(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/casestore",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	start := time.Date(2020, 1, 30, 0, 0, 0, 0, time.UTC)
	ph := derivedFixture("Philippines", start, 0, 5, 12)
	mx := derivedFixture("Mexico", start, 10, 20)

	require.NoError(t, service.Replace(ctx, "Philippines", ph))
	require.NoError(t, service.Replace(ctx, "Mexico", mx))

	dataset, err := service.Pull(ctx)
	require.NoError(t, err)
	require.Len(t, dataset, 5)
	// ordered by (country, date)
	require.Equal(t, "Mexico", dataset[0].Country)
	require.Equal(t, "Philippines", dataset[2].Country)
	require.Equal(t, ph, []timeseries.DerivedRecord(dataset[2:5]))

	got, err := service.PullCountry(ctx, "Philippines")
	require.NoError(t, err)
	require.Equal(t, ph, got)
}

func TestReplaceOverwrites(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/casestore",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx := context.Background()
	start := time.Date(2020, 1, 30, 0, 0, 0, 0, time.UTC)

	require.NoError(t, service.Replace(ctx, "Canada", derivedFixture("Canada", start, 1, 2, 3)))
	require.NoError(t, service.Replace(ctx, "Canada", derivedFixture("Canada", start, 1, 2)))

	got, err := service.PullCountry(ctx, "Canada")
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestPullCountryEmpty(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/casestore",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	got, err := service.PullCountry(context.Background(), "Nowhere")
	require.NoError(t, err)
	require.Empty(t, got)
}
