package domain

import "strings"

// unsetLink is the placeholder the old admin forms stored for "no file yet".
const unsetLink = "#"

// NormalizeLink turns empty strings and the "#" placeholder into nil.
func NormalizeLink(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" || trimmed == unsetLink {
		return nil
	}
	return &trimmed
}

// TrimOrNil trims whitespace. Returns nil if the result is empty.
func TrimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func ptrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
