package utils

import (
	"strconv"
	"strings"
)

// The admin add-food form collects every field as free text. These helpers
// perform the per-field coercion: blank, "None" or unparseable numeric
// input becomes an absent value instead of failing the whole insert.

// CleanString trims the raw field and returns "" for the absent markers.
func CleanString(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "None" {
		return ""
	}
	return s
}

// IntOrNil parses the raw field as a base-10 integer, returning nil when
// the field is absent or not numeric.
func IntOrNil(raw string) *int {
	s := CleanString(raw)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// UintOrNil parses the raw field as an unsigned integer id, returning nil
// when the field is absent, not numeric, or negative.
func UintOrNil(raw string) *uint {
	s := CleanString(raw)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil
	}
	u := uint(n)
	return &u
}
