package utils

import "strings"

// StringPtr returns a pointer to the trimmed value, or nil when it is blank.
// Optional text columns are stored as NULL rather than empty strings.
func StringPtr(val string) *string {
	v := strings.TrimSpace(val)
	if v == "" {
		return nil
	}
	return &v
}
