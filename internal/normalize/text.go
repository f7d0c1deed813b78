package normalize

import "strings"

// Trimmed trims surrounding whitespace from a nullable column.
// Returns nil if the input is nil or the result is empty.
func Trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}
