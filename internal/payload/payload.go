// Package payload builds the JSON bodies sent to the API. Each builder is a
// pure function from form state to a map: an absent key is omitted from the
// request, a nil value is sent as explicit null ("clear this field").
package payload

import "strings"

// isBlank reports whether a text field is empty after trimming.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
