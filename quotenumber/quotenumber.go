// Package quotenumber formats and parses the sequential quote
// identifiers shown to customers, in the form "QQ-YYYY-NNN": a 4-digit
// year and a sequence number zero-padded to at least 3 digits. The
// pattern appears in shared quote links and must stay stable. The
// package is stateless; uniqueness of assigned numbers is the storage
// layer's concern.
package quotenumber

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidYear     = errors.New("quotenumber: year must be a 4-digit number")
	ErrInvalidSequence = errors.New("quotenumber: sequence number must be positive")
)

var (
	parsePattern = regexp.MustCompile(`^QQ-(\d{4})-(\d+)$`)
	validPattern = regexp.MustCompile(`^QQ-\d{4}-\d{3,}$`)
)

// Parsed is the decomposition of a well-formed quote number.
type Parsed struct {
	Year           int
	SequenceNumber int
}

// Format builds a quote number for the given year and sequence number.
// Sequences below 1000 are zero-padded to 3 digits; larger sequences
// are never truncated.
func Format(year, sequenceNumber int) (string, error) {
	if year < 1000 || year > 9999 {
		return "", ErrInvalidYear
	}
	if sequenceNumber < 1 {
		return "", ErrInvalidSequence
	}
	return fmt.Sprintf("QQ-%d-%03d", year, sequenceNumber), nil
}

// Parse extracts the year and sequence number from a quote number.
// Malformed input is an expected condition (legacy rows, user-edited
// links), so it reports ok=false rather than an error.
func Parse(quoteNumber string) (Parsed, bool) {
	match := parsePattern.FindStringSubmatch(quoteNumber)
	if match == nil {
		return Parsed{}, false
	}

	year, err := strconv.Atoi(match[1])
	if err != nil {
		return Parsed{}, false
	}
	sequence, err := strconv.Atoi(match[2])
	if err != nil {
		return Parsed{}, false
	}

	return Parsed{Year: year, SequenceNumber: sequence}, true
}

// IsValidFormat reports whether the string is a fully-formed quote
// number with the mandatory 3-digit minimum sequence width.
func IsValidFormat(quoteNumber string) bool {
	return validPattern.MatchString(quoteNumber)
}

// NextSequence returns 1 + the highest sequence among existing numbers
// of the given year, or 1 when that year has none. Numbers from other
// years never influence the result.
func NextSequence(existing []string, year int) int {
	prefix := fmt.Sprintf("QQ-%d-", year)

	maxSequence := 0
	for _, quoteNumber := range existing {
		if !strings.HasPrefix(quoteNumber, prefix) {
			continue
		}
		if parsed, ok := Parse(quoteNumber); ok && parsed.SequenceNumber > maxSequence {
			maxSequence = parsed.SequenceNumber
		}
	}

	return maxSequence + 1
}
