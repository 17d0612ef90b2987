package covidapi

import "fmt"

// NetworkError reports a transport-level failure, the request never
// produced an HTTP status code.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %s", e.URL, e.Err.Error())
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StatusError reports a non-success HTTP status. the upstream api answers
// bad date ranges and unsupported slugs this way instead of returning an
// error body.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request to %s returned status %d", e.URL, e.StatusCode)
}

// ParseError reports a response body that was not valid json for the
// expected shape.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse response from %s: %s", e.URL, e.Err.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
