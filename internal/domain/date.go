package domain

import (
	"fmt"
	"time"
)

const (
	// DateKeyLayout is the canonical YYYY-MM-DD form used to store and compare dates.
	DateKeyLayout = "2006-01-02"
	// DisplayLayout renders dates as dd/MM/yyyy for people.
	DisplayLayout = "02/01/2006"
)

// DateKey returns the canonical key of the calendar day t falls on, in t's location.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a canonical YYYY-MM-DD key. Anything else is rejected,
// including keys that are not zero padded.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", key)
	}
	return t, nil
}

// IsDateKey reports whether key is a well formed canonical date key.
func IsDateKey(key string) bool {
	_, err := ParseDateKey(key)
	return err == nil
}

// FormatDisplayDate renders a canonical key as dd/MM/yyyy.
func FormatDisplayDate(key string) (string, error) {
	t, err := ParseDateKey(key)
	if err != nil {
		return "", err
	}
	return t.Format(DisplayLayout), nil
}

// DisplayDate is FormatDisplayDate for keys already known to be valid.
// Malformed keys are returned unchanged.
func DisplayDate(key string) string {
	s, err := FormatDisplayDate(key)
	if err != nil {
		return key
	}
	return s
}
