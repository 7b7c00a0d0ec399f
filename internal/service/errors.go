package service

// HTTPError represents an error with an associated HTTP status code. The wrapped error
// keeps the upstream taxonomy reachable via errors.As for callers that care which kind
// of failure occurred.
type HTTPError struct {
	StatusCode int
	Wrapped    error
}

func (e HTTPError) Error() string {
	return e.Wrapped.Error()
}

func (e HTTPError) Unwrap() error {
	return e.Wrapped
}

func httpError(statusCode int, err error) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Wrapped:    err,
	}
}
