// Package casestore persists derived records locally so tables can be
// re-rendered without refetching. the retrieval core stays stateless,
// this store sits on the consumer side next to the cli.
package casestore

import (
	"context"
	"database/sql"
	"time"

	"covidtrends-backend/lib/timeseries"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/casestore")

type Service struct {
	db *sql.DB
}

func NewService(database *sql.DB) Service {
	return Service{db: database}
}

// Replace swaps out a country's stored rows for the given ones inside a
// single transaction, a partial write never survives.
func (s Service) Replace(ctx context.Context, country string, records []timeseries.DerivedRecord) error {
	ctx, span := tracer.Start(ctx, "Replace")
	defer span.End()
	span.SetAttributes(
		attribute.String("country", country),
		attribute.Int("records", len(records)),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM case_records WHERE country = ?`, country)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	for _, rec := range records {
		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO case_records
				(country, date, confirmed, deaths, recovered, active, new_cases, new_deaths)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			country,
			rec.Date.UTC().Unix(),
			rec.Confirmed,
			rec.Deaths,
			rec.Recovered,
			rec.Active,
			rec.NewCases,
			rec.NewDeaths,
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}

	err = tx.Commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Pull reads every stored row back as a dataset ordered by
// (country, date).
func (s Service) Pull(ctx context.Context) (timeseries.Dataset, error) {
	ctx, span := tracer.Start(ctx, "Pull")
	defer span.End()

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT country, date, confirmed, deaths, recovered, active, new_cases, new_deaths
			FROM case_records ORDER BY country, date`,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

// PullCountry reads one country's stored rows ordered by date.
func (s Service) PullCountry(ctx context.Context, country string) ([]timeseries.DerivedRecord, error) {
	ctx, span := tracer.Start(ctx, "PullCountry")
	defer span.End()
	span.SetAttributes(attribute.String("country", country))

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT country, date, confirmed, deaths, recovered, active, new_cases, new_deaths
			FROM case_records WHERE country = ? ORDER BY date`,
		country,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]timeseries.DerivedRecord, error) {
	var out []timeseries.DerivedRecord
	for rows.Next() {
		var rec timeseries.DerivedRecord
		var unix int64
		err := rows.Scan(
			&rec.Country,
			&unix,
			&rec.Confirmed,
			&rec.Deaths,
			&rec.Recovered,
			&rec.Active,
			&rec.NewCases,
			&rec.NewDeaths,
		)
		if err != nil {
			return nil, err
		}
		rec.Date = time.Unix(unix, 0).UTC()
		rec.Year = rec.Date.Year()
		rec.Month = int(rec.Date.Month())
		rec.Day = rec.Date.Day()
		out = append(out, rec)
	}
	return out, rows.Err()
}
