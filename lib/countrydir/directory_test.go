package countrydir

import (
	"context"
	"fmt"
	"testing"

	"covidtrends-backend/lib/covidapi"

	"github.com/stretchr/testify/require"
)

var fixtureCountries = []covidapi.Country{
	{Country: "Philippines", Slug: "philippines", ISO2: "PH"},
	{Country: "China", Slug: "china", ISO2: "CN"},
	{Country: "Mexico", Slug: "mexico", ISO2: "MX"},
	{Country: "United States of America", Slug: "united-states", ISO2: "US"},
	{Country: "Canada", Slug: "canada", ISO2: "CA"},
}

func TestResolve(t *testing.T) {
	dir := New(fixtureCountries)

	for _, c := range fixtureCountries {
		slug, err := dir.Resolve(c.Country)
		require.NoError(t, err)
		require.Equal(t, c.Slug, slug)
	}
}

func TestResolveUnknown(t *testing.T) {
	dir := New(fixtureCountries)

	_, err := dir.Resolve("Atlantis")
	var unknown *UnknownCountryError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "Atlantis", unknown.Name)
}

func TestResolveIsCaseSensitive(t *testing.T) {
	dir := New(fixtureCountries)

	_, err := dir.Resolve("philippines")
	var unknown *UnknownCountryError
	require.ErrorAs(t, err, &unknown)
	// close enough that the error should point at the real name
	require.Equal(t, "Philippines", unknown.Suggestion)
}

func TestIsKnownSlug(t *testing.T) {
	dir := New(fixtureCountries)
	require.True(t, dir.IsKnownSlug("united-states"))
	require.False(t, dir.IsKnownSlug("united states"))
	require.False(t, dir.IsKnownSlug("Philippines"))
}

func TestNamesSorted(t *testing.T) {
	dir := New(fixtureCountries)
	names := dir.Names()
	require.Len(t, names, len(fixtureCountries))
	for i := 1; i < len(names); i++ {
		require.Less(t, names[i-1], names[i])
	}
}

type staticSource struct {
	countries []covidapi.Country
	err       error
}

func (s staticSource) Countries(ctx context.Context) ([]covidapi.Country, error) {
	return s.countries, s.err
}

func TestLoad(t *testing.T) {
	dir, err := Load(context.Background(), staticSource{countries: fixtureCountries})
	require.NoError(t, err)
	require.Equal(t, len(fixtureCountries), dir.Len())
}

func TestLoadPropagatesSourceError(t *testing.T) {
	boom := fmt.Errorf("connection reset")
	_, err := Load(context.Background(), staticSource{err: boom})
	require.ErrorIs(t, err, boom)
}
