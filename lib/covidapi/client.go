package covidapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"covidtrends-backend/lib/restyutil"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("lib/covidapi")

const DefaultBaseUrl = "https://api.covid19api.com"

// Client talks to the covid19api.com REST surface. every method issues
// exactly one GET and blocks until the response arrives, there are no
// retries and no caching.
type Client struct {
	http *resty.Client
}

func NewClient(baseUrl string) *Client {
	http := resty.New()
	http.SetBaseURL(baseUrl)
	return &Client{http: http}
}

// SetInstrumentOutput enables debug dumps of every request/response pair,
// see restyutil.InstrumentClient.
func (c *Client) SetInstrumentOutput(output restyutil.InstrumentOutput) {
	restyutil.InstrumentClient(c.http, tracer, output)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	ctx, span := tracer.Start(ctx, fmt.Sprintf("get:%s", path))
	defer span.End()

	req := c.http.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}

	res, err := req.Get(path)
	if err != nil {
		err = &NetworkError{URL: req.URL, Err: err}
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return err
	}
	span.SetAttributes(attribute.Int("status", res.StatusCode()))

	if res.IsError() {
		err := &StatusError{URL: res.Request.URL, StatusCode: res.StatusCode()}
		span.RecordError(err)
		span.SetStatus(codes.Error, "non-success status")
		return err
	}

	err = json.Unmarshal(res.Body(), out)
	if err != nil {
		err = &ParseError{URL: res.Request.URL, Err: err}
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse json response")
		return err
	}
	return nil
}

// dayBound turns an opaque caller-supplied date string into the query
// format the api expects. no validation happens here, a malformed date
// only surfaces as a StatusError or an empty result from the upstream.
func dayBound(date string) string {
	return date + "T00:00:00Z"
}

func rangeQuery(from, to string) url.Values {
	query := url.Values{}
	if from != "" {
		query.Set("from", dayBound(from))
	}
	if to != "" {
		query.Set("to", dayBound(to))
	}
	return query
}

// Countries fetches the /countries listing.
func (c *Client) Countries(ctx context.Context) ([]Country, error) {
	var out []Country
	err := c.get(ctx, "/countries", nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DayOne fetches the per-day cumulative series for one status starting at
// the country's first reported case.
func (c *Client) DayOne(ctx context.Context, slug, status string) ([]StatusRecord, error) {
	var out []StatusRecord
	path := fmt.Sprintf(
		"/dayone/country/%s/status/%s",
		url.PathEscape(slug), url.PathEscape(status),
	)
	err := c.get(ctx, path, nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TotalByStatus fetches the country-wide cumulative series for one status,
// optionally bounded by from/to dates (opaque strings, see dayBound).
func (c *Client) TotalByStatus(ctx context.Context, slug, status, from, to string) ([]StatusRecord, error) {
	var out []StatusRecord
	path := fmt.Sprintf(
		"/total/country/%s/status/%s",
		url.PathEscape(slug), url.PathEscape(status),
	)
	err := c.get(ctx, path, rangeQuery(from, to), &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CountryInRange fetches all native fields per province/day within the
// given bounds.
func (c *Client) CountryInRange(ctx context.Context, slug, from, to string) ([]CountryRecord, error) {
	var out []CountryRecord
	path := fmt.Sprintf("/country/%s", url.PathEscape(slug))
	err := c.get(ctx, path, rangeQuery(from, to), &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Summary fetches the latest-available global and per-country totals.
func (c *Client) Summary(ctx context.Context) (Summary, error) {
	var out Summary
	err := c.get(ctx, "/summary", nil, &out)
	if err != nil {
		return Summary{}, err
	}
	return out, nil
}

// TotalHistory fetches the full country-wide daily series with all native
// fields.
func (c *Client) TotalHistory(ctx context.Context, slug string) ([]CountryRecord, error) {
	var out []CountryRecord
	path := fmt.Sprintf("/total/country/%s", url.PathEscape(slug))
	err := c.get(ctx, path, nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
