// Package casedata exposes the validated accessors over the upstream api:
// every operation checks its country argument against the directory before
// anything goes out on the wire.
package casedata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"covidtrends-backend/lib/countrydir"
	"covidtrends-backend/lib/covidapi"
	"covidtrends-backend/lib/timeseries"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/casedata")

const statusConfirmed = "confirmed"

// ErrNoCases reports a country whose day-one series came back empty.
var ErrNoCases = errors.New("no confirmed cases recorded")

type Service struct {
	client *covidapi.Client
	dir    *countrydir.Directory
}

func NewService(client *covidapi.Client, dir *countrydir.Directory) Service {
	return Service{client: client, dir: dir}
}

// Countries returns the directory listing the service validates against.
func (s Service) Countries() []covidapi.Country {
	return s.dir.Countries()
}

// Resolve maps a display name to its slug without touching the network.
func (s Service) Resolve(name string) (string, error) {
	return s.dir.Resolve(name)
}

// FirstCase is the first confirmed-case row of a country's day-one series.
type FirstCase struct {
	Country string
	Cases   int64
	Status  string
	Date    time.Time
}

func (s Service) FirstCase(ctx context.Context, name string) (FirstCase, error) {
	ctx, span := tracer.Start(ctx, "FirstCase")
	defer span.End()
	span.SetAttributes(attribute.String("country", name))

	slug, err := s.dir.Resolve(name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return FirstCase{}, err
	}

	rows, err := s.client.DayOne(ctx, slug, statusConfirmed)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return FirstCase{}, err
	}
	if len(rows) == 0 {
		err := fmt.Errorf("%w for %q", ErrNoCases, name)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return FirstCase{}, err
	}

	first := rows[0]
	return FirstCase{
		Country: first.Country,
		Cases:   first.Cases,
		Status:  first.Status,
		Date:    first.Date,
	}, nil
}

// CumulativePoint is one row of a bounded cumulative confirmed series.
type CumulativePoint struct {
	Country string
	Cases   int64
	Status  string
	Date    time.Time
}

// CumulativeInRange returns the country-wide cumulative confirmed series
// between from and to. the bounds are opaque date strings passed through
// to the api untouched.
func (s Service) CumulativeInRange(ctx context.Context, name, from, to string) ([]CumulativePoint, error) {
	ctx, span := tracer.Start(ctx, "CumulativeInRange")
	defer span.End()
	span.SetAttributes(
		attribute.String("country", name),
		attribute.String("from", from),
		attribute.String("to", to),
	)

	slug, err := s.dir.Resolve(name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	rows, err := s.client.TotalByStatus(ctx, slug, statusConfirmed, from, to)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	out := make([]CumulativePoint, len(rows))
	for i, row := range rows {
		out[i] = CumulativePoint{
			Country: row.Country,
			Cases:   row.Cases,
			Status:  row.Status,
			Date:    row.Date,
		}
	}
	return out, nil
}

// VariablePoint is one row of a single selected field over a date range.
type VariablePoint struct {
	Country string
	Field   string
	Value   int64
	Date    time.Time
}

// VariableInRange returns one named field of the per-day records between
// from and to. the field is a plain string resolved against the fixed
// record schema, unknown names fail before the network call.
func (s Service) VariableInRange(ctx context.Context, name, from, to, field string) ([]VariablePoint, error) {
	ctx, span := tracer.Start(ctx, "VariableInRange")
	defer span.End()
	span.SetAttributes(
		attribute.String("country", name),
		attribute.String("field", field),
	)

	slug, err := s.dir.Resolve(name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	column, err := timeseries.CaseColumn(field)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	rows, err := s.client.CountryInRange(ctx, slug, from, to)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	out := make([]VariablePoint, len(rows))
	for i, row := range rows {
		out[i] = VariablePoint{
			Country: row.Country,
			Field:   field,
			Value:   column(toCaseRecord(row)),
			Date:    row.Date,
		}
	}
	return out, nil
}

// SnapshotRow is one country's latest totals from the /summary endpoint.
type SnapshotRow struct {
	Country        string
	NewConfirmed   int64
	TotalConfirmed int64
	NewDeaths      int64
	TotalDeaths    int64
	Date           time.Time
}

// Snapshot returns one row per requested name, in input order, drawn from
// the live summary. the first name missing from the summary fails the
// whole call with an UnknownCountryError naming it, no partial rows are
// returned.
func (s Service) Snapshot(ctx context.Context, names []string) ([]SnapshotRow, error) {
	ctx, span := tracer.Start(ctx, "Snapshot")
	defer span.End()
	span.SetAttributes(attribute.Int("countries", len(names)))

	for _, name := range names {
		_, err := s.dir.Resolve(name)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
	}

	summary, err := s.client.Summary(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	byName := make(map[string]covidapi.SummaryCountry, len(summary.Countries))
	for _, c := range summary.Countries {
		byName[c.Country] = c
	}

	out := make([]SnapshotRow, len(names))
	for i, name := range names {
		c, ok := byName[name]
		if !ok {
			err := &countrydir.UnknownCountryError{Name: name}
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		out[i] = SnapshotRow{
			Country:        c.Country,
			NewConfirmed:   c.NewConfirmed,
			TotalConfirmed: c.TotalConfirmed,
			NewDeaths:      c.NewDeaths,
			TotalDeaths:    c.TotalDeaths,
			Date:           c.Date,
		}
	}
	return out, nil
}

// FullHistory returns a country's complete daily series with all native
// fields, ordered as the api reports it (date ascending).
func (s Service) FullHistory(ctx context.Context, name string) ([]timeseries.CaseRecord, error) {
	ctx, span := tracer.Start(ctx, "FullHistory")
	defer span.End()
	span.SetAttributes(attribute.String("country", name))

	slug, err := s.dir.Resolve(name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	rows, err := s.client.TotalHistory(ctx, slug)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	out := make([]timeseries.CaseRecord, len(rows))
	for i, row := range rows {
		out[i] = toCaseRecord(row)
	}
	return out, nil
}

// Dataset fetches the full history of every named country, derives daily
// metrics and merges them into one long-form dataset. fetches happen
// sequentially, one request per country.
func (s Service) Dataset(ctx context.Context, names []string) (timeseries.Dataset, error) {
	ctx, span := tracer.Start(ctx, "Dataset")
	defer span.End()
	span.SetAttributes(attribute.Int("countries", len(names)))

	histories := make([][]timeseries.DerivedRecord, len(names))
	for i, name := range names {
		history, err := s.FullHistory(ctx, name)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		histories[i] = timeseries.DeriveDaily(history)
	}

	dataset, err := timeseries.Merge(histories...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return dataset, nil
}

func toCaseRecord(row covidapi.CountryRecord) timeseries.CaseRecord {
	return timeseries.CaseRecord{
		Country:   row.Country,
		Date:      row.Date,
		Confirmed: row.Confirmed,
		Deaths:    row.Deaths,
		Recovered: row.Recovered,
		Active:    row.Active,
	}
}
