package kbart

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Embargo codes are <type><length><unit>: R (access restricted to a recent
// window) or P (access permitted up to a moving wall), a digit count, and
// a unit of days, months, or years. The pattern anchors at the start only;
// named groups document the sections rather than drive matching logic.
var embargoPattern = regexp.MustCompile(`^(?P<type>R|P)(?P<length>\d+)(?P<unit>D|M|Y)`)

// embargoCodeStrings maps each code letter the pattern can produce to its
// human phrase.
var embargoCodeStrings = map[string]string{
	"R": "Within the last",
	"P": "Up to",
	"D": "day(s)",
	"M": "month(s)",
	"Y": "year(s)",
}

// EmbargoPrettyPrint renders an embargo code as readable text, e.g. "P1M"
// as "Up to 1 month(s) ago". An empty code yields an empty string; a
// non-empty code that does not match the pattern fails with
// UnknownEmbargoFormatError. Should a matched code letter ever be missing
// from the phrase table - possible only if the pattern alphabet grows
// without it - the result is an empty string rather than an error.
func EmbargoPrettyPrint(embargo string) (string, error) {
	if embargo == "" {
		return "", nil
	}

	matches := embargoPattern.FindStringSubmatch(embargo)
	if matches == nil {
		return "", NewUnknownEmbargoFormatError(embargo)
	}

	typePhrase, typeKnown := embargoCodeStrings[matches[1]]
	unitPhrase, unitKnown := embargoCodeStrings[matches[3]]
	if !typeKnown || !unitKnown {
		return "", nil
	}
	return fmt.Sprintf("%s %s %s ago", typePhrase, matches[2], unitPhrase), nil
}

// CheckEmbargoFormat reports whether the value matches the embargo code
// pattern. It never fails; callers wanting the reason use
// EmbargoPrettyPrint.
func CheckEmbargoFormat(embargo string) bool {
	return embargoPattern.MatchString(embargo)
}

// EmbargoDate resolves an embargo code to the calendar date of its
// boundary, counting back from reference using KBART's fixed conversions
// of 30 days per month and 365 days per year.
func EmbargoDate(embargo string, reference time.Time) (time.Time, error) {
	matches := embargoPattern.FindStringSubmatch(embargo)
	if matches == nil {
		return time.Time{}, NewUnknownEmbargoFormatError(embargo)
	}

	length, err := strconv.Atoi(matches[2])
	if err != nil {
		return time.Time{}, NewUnknownEmbargoFormatError(embargo)
	}

	days := length
	switch matches[3] {
	case "M":
		days *= 30
	case "Y":
		days *= 365
	}
	return reference.AddDate(0, 0, -days), nil
}
