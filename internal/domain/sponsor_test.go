package domain

import (
	"errors"
	"testing"
)

func TestSponsorIDRoundTrip(t *testing.T) {
	pairs := []struct {
		cluster  string
		specific string
	}{
		{"01", "0042"},
		{"AA", "17"},
		{"addis", "0001"},
		{"7", "x"},
	}
	for _, p := range pairs {
		id, err := NewSponsorID(p.cluster, p.specific)
		if err != nil {
			t.Fatalf("NewSponsorID(%q, %q) error: %v", p.cluster, p.specific, err)
		}
		parsed, err := ParseSponsorID(id.String())
		if err != nil {
			t.Fatalf("ParseSponsorID(%q) error: %v", id.String(), err)
		}
		if parsed != id {
			t.Fatalf("round trip mismatch: got %+v want %+v", parsed, id)
		}
	}
}

func TestParseSponsorIDSplitsOnFirstDash(t *testing.T) {
	id, err := ParseSponsorID("01-00-42")
	if err != nil {
		t.Fatalf("ParseSponsorID error: %v", err)
	}
	if id.Cluster != "01" || id.Specific != "00-42" {
		t.Fatalf("unexpected split: %+v", id)
	}
}

func TestParseSponsorIDRejectsMalformed(t *testing.T) {
	for _, code := range []string{"", "-", "01-", "-42", "0142"} {
		if _, err := ParseSponsorID(code); !errors.Is(err, ErrInvalidSponsorID) {
			t.Fatalf("ParseSponsorID(%q) = %v, want ErrInvalidSponsorID", code, err)
		}
	}
}

func TestNewSponsorIDRejectsEmptyHalves(t *testing.T) {
	if _, err := NewSponsorID(" ", "42"); !errors.Is(err, ErrInvalidSponsorID) {
		t.Fatalf("expected ErrInvalidSponsorID, got %v", err)
	}
	if _, err := NewSponsorID("01", ""); !errors.Is(err, ErrInvalidSponsorID) {
		t.Fatalf("expected ErrInvalidSponsorID, got %v", err)
	}
}
