// Package validator holds the pure field-level rules that gate every product
// and receipt write. Validators accumulate every violation instead of
// stopping at the first one, and never touch the store.
package validator

import (
	"net/url"
	"time"
)

const dateLayout = "2006-01-02"

// Result is the outcome of validating a candidate record. Valid is true iff
// Errors is empty.
type Result struct {
	Valid  bool
	Errors []string
}

func newResult(errors []string) Result {
	return Result{Valid: len(errors) == 0, Errors: errors}
}

func isValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func isValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
