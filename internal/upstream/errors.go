package upstream

import "errors"

// SubmissionError reports a failed state-changing call to the backend
// (order creation, stock update, deposit). The backend message is
// surfaced verbatim when present; otherwise the fallback is used.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// NewSubmissionError wraps err, preferring the backend-provided message.
func NewSubmissionError(err error, fallback string) *SubmissionError {
	message := fallback
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		message = apiErr.Message
	}
	return &SubmissionError{Message: message, Err: err}
}
