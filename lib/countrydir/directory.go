// Package countrydir holds the cached country listing used to validate
// user input before any other endpoint is called.
package countrydir

import (
	"context"
	"sort"

	"covidtrends-backend/lib/covidapi"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("lib/countrydir")

// Source yields the country listing. *covidapi.Client satisfies this,
// tests supply a fixture instead.
type Source interface {
	Countries(ctx context.Context) ([]covidapi.Country, error)
}

// Directory is an immutable name/slug lookup over the /countries listing.
// refreshing means calling Load again and swapping the pointer, existing
// directories never change after construction.
type Directory struct {
	ordered []covidapi.Country
	byName  map[string]covidapi.Country
	slugs   map[string]struct{}
}

// Load fetches the listing from the source and builds a directory from it.
func Load(ctx context.Context, src Source) (*Directory, error) {
	ctx, span := tracer.Start(ctx, "Load")
	defer span.End()

	countries, err := src.Countries(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return New(countries), nil
}

// New builds a directory from an already-fetched listing. entries sharing
// a slug collapse to the last one seen, the upstream guarantees slug
// uniqueness so this only matters for hand-built fixtures.
func New(countries []covidapi.Country) *Directory {
	ordered := make([]covidapi.Country, len(countries))
	copy(ordered, countries)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Country < ordered[j].Country
	})

	byName := make(map[string]covidapi.Country, len(ordered))
	slugs := make(map[string]struct{}, len(ordered))
	for _, c := range ordered {
		byName[c.Country] = c
		slugs[c.Slug] = struct{}{}
	}
	return &Directory{
		ordered: ordered,
		byName:  byName,
		slugs:   slugs,
	}
}

// Resolve maps a display name to its api slug. matching is exact and
// case-sensitive, a failure carries a fuzzy suggestion but never acts
// on it.
func (d *Directory) Resolve(name string) (string, error) {
	c, ok := d.byName[name]
	if !ok {
		return "", &UnknownCountryError{
			Name:       name,
			Suggestion: d.closest(name),
		}
	}
	return c.Slug, nil
}

func (d *Directory) IsKnownSlug(slug string) bool {
	_, ok := d.slugs[slug]
	return ok
}

// Names returns every known display name in alphabetical order.
func (d *Directory) Names() []string {
	names := make([]string, len(d.ordered))
	for i, c := range d.ordered {
		names[i] = c.Country
	}
	return names
}

// Countries returns a copy of the listing in alphabetical order.
func (d *Directory) Countries() []covidapi.Country {
	out := make([]covidapi.Country, len(d.ordered))
	copy(out, d.ordered)
	return out
}

func (d *Directory) Len() int {
	return len(d.ordered)
}
