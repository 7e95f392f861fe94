// Package suppliers proxies supplier management to the commerce backend.
package suppliers

import "fmt"

// Supplier represents a supplier record.
type Supplier struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

// FetchError reports a failed supplier list load.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("suppliers: fetch: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
