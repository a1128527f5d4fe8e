package internal

// MissingDataError marks failures caused by absent source data rather
// than by a malformed request, so callers can decide whether to skip or
// abort.
type MissingDataError struct {
	Err error
}

func (e MissingDataError) Error() string {
	return e.Err.Error()
}

func (e MissingDataError) Unwrap() error {
	return e.Err
}
