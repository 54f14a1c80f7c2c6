package kbart

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NoHoldings is returned by HoldingsPrettyPrint when all six coverage
// values are empty.
const NoHoldings = "No holdings present"

// HoldingsPrettyPrint renders six coverage values - first issue date,
// volume, and issue, then last issue date, volume, and issue - as a
// readable range:
//
//	2015-01-01, Vol: 1, Issue: 1 - 2016-01-01, Vol: 2, Issue: 2
//
// Empty parts are omitted without dangling separators. An entirely empty
// last triple means coverage runs to present; an entirely empty input
// yields NoHoldings. Dates pass through verbatim, unvalidated. Inputs
// shorter than six values are treated as empty-padded.
func HoldingsPrettyPrint(holdings []string) string {
	holdings = normalizeHoldings(holdings)

	populated := false
	for _, value := range holdings {
		if value != "" {
			populated = true
			break
		}
	}
	if !populated {
		return NoHoldings
	}

	first := holdingsTriple(holdings[0], holdings[1], holdings[2])
	last := holdingsTriple(holdings[3], holdings[4], holdings[5])
	if last == "" {
		// KBART convention: no last holding means coverage to present.
		last = "present"
	}
	return first + " - " + last
}

// LengthOfCoverage returns the coverage span in whole years, computed from
// the leading year components of the first and last issue dates. A last
// date with no parseable year falls back to the current calendar year,
// matching the to-present convention. A first date with no parseable year
// fails with IncompleteDateInformationError: without a start there is no
// span to measure.
func LengthOfCoverage(holdings []string) (int, error) {
	holdings = normalizeHoldings(holdings)

	firstYear, firstErr := leadingYear(holdings[0])
	if firstErr != nil {
		return 0, NewIncompleteDateInformationError()
	}

	lastYear, lastErr := leadingYear(holdings[3])
	if lastErr != nil {
		lastYear = time.Now().Year()
	}

	return lastYear - firstYear, nil
}

// CoveragePrettyPrint renders the coverage span as readable text, e.g.
// "1 year(s)". It fails the way LengthOfCoverage fails.
func CoveragePrettyPrint(holdings []string) (string, error) {
	years, err := LengthOfCoverage(holdings)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d year(s)", years), nil
}

// holdingsTriple joins the populated parts of one end of a coverage range:
// the date verbatim, the volume as "Vol: <v>", the issue as "Issue: <i>".
func holdingsTriple(date, volume, issue string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{
		date,
		formatString(volume, "Vol: ", ""),
		formatString(issue, "Issue: ", ""),
	} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

// normalizeHoldings pads or truncates to exactly six values, the same
// discipline records apply to their rows.
func normalizeHoldings(holdings []string) []string {
	normalized := make([]string, holdingsWidth)
	for position := range normalized {
		if position < len(holdings) {
			normalized[position] = holdings[position]
		}
	}
	return normalized
}

// leadingYear parses the year component of a yyyy-mm-dd-like date string.
func leadingYear(date string) (int, error) {
	year, _, _ := strings.Cut(date, "-")
	return strconv.Atoi(strings.TrimSpace(year))
}
