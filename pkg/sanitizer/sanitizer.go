package sanitizer

import (
	"regexp"
	"strings"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var (
	reWhitespace    = regexp.MustCompile(`\s+`)
	reControl       = regexp.MustCompile(`[\p{Cc}\p{Cf}]+`)
	reReferenceJunk = regexp.MustCompile(`[\s{}\-]+`)
)

func trim(s string) string {
	return strings.TrimSpace(s)
}

func lower(s string) string {
	return strings.ToLower(s)
}

func stripControl(s string) string {
	return reControl.ReplaceAllString(s, "")
}

func collapseWhitespace(s string) string {
	return reWhitespace.ReplaceAllString(s, " ")
}

// SanitizeHotelName collapses whitespace runs, drops remaining control characters and trims.
// Case is preserved because names are matched exactly.
func SanitizeHotelName(input string) string {
	p := Pipeline{
		collapseWhitespace,
		stripControl,
		trim,
	}
	return p.Apply(input)
}

// SanitizeSearchQuery prepares a case-insensitive substring query.
func SanitizeSearchQuery(input string) string {
	p := Pipeline{
		SanitizeHotelName,
		lower,
	}
	return p.Apply(input)
}

// SanitizeReference accepts a booking reference in either the compact 32 hex form or the
// dashed/braced UUID form and returns the compact lowercase form.
func SanitizeReference(input string) string {
	p := Pipeline{
		trim,
		func(s string) string { return reReferenceJunk.ReplaceAllString(s, "") },
		lower,
	}
	return p.Apply(input)
}
