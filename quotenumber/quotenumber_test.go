package quotenumber

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		year     int
		sequence int
		want     string
	}{
		{2025, 7, "QQ-2025-007"},
		{2025, 1, "QQ-2025-001"},
		{2024, 999, "QQ-2024-999"},
		{2024, 1000, "QQ-2024-1000"},
		{1000, 12345, "QQ-1000-12345"},
	}
	for _, tc := range cases {
		got, err := Format(tc.year, tc.sequence)
		if err != nil {
			t.Fatalf("Format(%d, %d) failed: %v", tc.year, tc.sequence, err)
		}
		if got != tc.want {
			t.Fatalf("Format(%d, %d) = %q, want %q", tc.year, tc.sequence, got, tc.want)
		}
	}
}

func TestFormatRejectsInvalidInput(t *testing.T) {
	if _, err := Format(999, 1); !errors.Is(err, ErrInvalidYear) {
		t.Fatalf("expected ErrInvalidYear, got %v", err)
	}
	if _, err := Format(10000, 1); !errors.Is(err, ErrInvalidYear) {
		t.Fatalf("expected ErrInvalidYear, got %v", err)
	}
	if _, err := Format(2025, 0); !errors.Is(err, ErrInvalidSequence) {
		t.Fatalf("expected ErrInvalidSequence, got %v", err)
	}
	if _, err := Format(2025, -3); !errors.Is(err, ErrInvalidSequence) {
		t.Fatalf("expected ErrInvalidSequence, got %v", err)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 500; i++ {
		year := 1000 + r.Intn(9000)
		sequence := 1 + r.Intn(1000000)

		formatted, err := Format(year, sequence)
		if err != nil {
			t.Fatalf("Format(%d, %d) failed: %v", year, sequence, err)
		}
		parsed, ok := Parse(formatted)
		if !ok {
			t.Fatalf("Parse(%q) failed", formatted)
		}
		if parsed.Year != year || parsed.SequenceNumber != sequence {
			t.Fatalf("round trip %q = %+v, want {%d %d}", formatted, parsed, year, sequence)
		}
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	for _, s := range []string{"", "QQ-2025", "QQ-2025-", "qq-2025-001", "QQ-25-001", "INV-2025-001", "QQ-2025-001-extra", "QQ-2025-abc"} {
		if _, ok := Parse(s); ok {
			t.Fatalf("Parse(%q) unexpectedly succeeded", s)
		}
	}
}

func TestIsValidFormat(t *testing.T) {
	valid := []string{"QQ-2025-001", "QQ-2025-999", "QQ-2025-1000", "QQ-1000-003"}
	for _, s := range valid {
		if !IsValidFormat(s) {
			t.Fatalf("IsValidFormat(%q) = false, want true", s)
		}
	}
	// Parse tolerates short sequences, IsValidFormat does not.
	invalid := []string{"QQ-2025-1", "QQ-2025-12", "QQ-202-001", "QQ-2025-", "quote-2025-001"}
	for _, s := range invalid {
		if IsValidFormat(s) {
			t.Fatalf("IsValidFormat(%q) = true, want false", s)
		}
	}
}

func TestSequencePadding(t *testing.T) {
	for seq := 1; seq <= 999; seq += 7 {
		formatted, err := Format(2025, seq)
		if err != nil {
			t.Fatalf("Format failed: %v", err)
		}
		if len(formatted) != len("QQ-2025-000") {
			t.Fatalf("Format(2025, %d) = %q, sequence segment shorter than 3 digits", seq, formatted)
		}
	}
}

func TestNextSequence(t *testing.T) {
	existing := []string{"QQ-2025-001", "QQ-2025-005", "QQ-2025-003", "QQ-2024-120"}
	if got := NextSequence(existing, 2025); got != 6 {
		t.Fatalf("NextSequence = %d, want 6", got)
	}
}

func TestNextSequenceIgnoresOtherYears(t *testing.T) {
	existing := []string{"QQ-2024-120", "QQ-2023-050"}
	if got := NextSequence(existing, 2025); got != 1 {
		t.Fatalf("NextSequence = %d, want 1", got)
	}
}

func TestNextSequenceEmpty(t *testing.T) {
	if got := NextSequence(nil, 2025); got != 1 {
		t.Fatalf("NextSequence(nil) = %d, want 1", got)
	}
}

func TestNextSequenceOverFormattedSet(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		year := 1000 + r.Intn(9000)
		n := 1 + r.Intn(30)
		maxSeq := 0
		existing := make([]string, 0, n)
		for j := 0; j < n; j++ {
			seq := 1 + r.Intn(5000)
			if seq > maxSeq {
				maxSeq = seq
			}
			formatted, err := Format(year, seq)
			if err != nil {
				t.Fatalf("Format failed: %v", err)
			}
			existing = append(existing, formatted)
		}
		// Noise from a different year must not leak in.
		existing = append(existing, fmt.Sprintf("QQ-%d-9999", 1000+(year-1000+1)%9000))

		if got := NextSequence(existing, year); got != maxSeq+1 {
			t.Fatalf("NextSequence = %d, want %d", got, maxSeq+1)
		}
	}
}
