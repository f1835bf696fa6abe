package reconcile

import (
	"testing"
	"time"
)

func TestDueDateWrapsDecemberIntoNextYear(t *testing.T) {
	due := DueDate(Period{Month: time.December, Year: 2025}, 15)
	want := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !due.Equal(want) {
		t.Fatalf("DueDate = %s, want %s", due, want)
	}
}

func TestDayOffsetSignConvention(t *testing.T) {
	due := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		today time.Time
		want  int
	}{
		{time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), -5},
		{time.Date(2025, 3, 15, 23, 59, 0, 0, time.UTC), 0},
		{time.Date(2025, 3, 16, 0, 1, 0, 0, time.UTC), 1},
		{time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC), 30},
	}
	for _, tc := range tests {
		if got := DayOffset(tc.today, due); got != tc.want {
			t.Fatalf("DayOffset(%s) = %d, want %d", tc.today.Format("2006-01-02 15:04"), got, tc.want)
		}
	}
}

func TestDayOffsetAcrossLeapDay(t *testing.T) {
	// Last paid January 2024, so the due date is 15 February 2024; the
	// offset counted from mid-March must include the leap day.
	due := DueDate(Period{Month: time.January, Year: 2024}, 15)
	got := DayOffset(time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC), due)
	if got != 30 {
		t.Fatalf("DayOffset across leap day = %d, want 30", got)
	}
}

func TestOverdueBoundaryFromSpecScenario(t *testing.T) {
	// Last paid June 2025 means due 15 July 2025.
	due := DueDate(Period{Month: time.June, Year: 2025}, 15)
	policy := DefaultPolicy()

	offset := DayOffset(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), due)
	if offset != 17 {
		t.Fatalf("offset on Aug 1 = %d, want 17", offset)
	}
	if policy.Decide(offset) != DecideNothing {
		t.Fatalf("day 17 overdue should emit nothing")
	}

	offset = DayOffset(time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC), due)
	if offset != 30 {
		t.Fatalf("offset on Aug 14 = %d, want 30", offset)
	}
	if policy.Decide(offset) != DecideDue {
		t.Fatalf("day 30 overdue should emit a due notice")
	}
}

func TestReminderBoundaryFromSpecScenario(t *testing.T) {
	due := time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC)
	policy := DefaultPolicy()

	offset := DayOffset(time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC), due)
	if offset != -7 {
		t.Fatalf("offset on Nov 8 = %d, want -7", offset)
	}
	if policy.Decide(offset) != DecideReminder {
		t.Fatalf("7 days before due should emit a reminder")
	}

	// 5 days out is not a configured reminder offset.
	if policy.Decide(-5) != DecideNothing {
		t.Fatalf("5 days before due should emit nothing")
	}
}

func TestDecideDueOnlyOnConfiguredOffsets(t *testing.T) {
	policy := DefaultPolicy()
	for offset, want := range map[int]Decision{
		1:  DecideDue,
		2:  DecideNothing,
		7:  DecideDue,
		15: DecideDue,
		29: DecideNothing,
		30: DecideDue,
		31: DecideNothing,
		0:  DecideNothing,
		-3: DecideReminder,
	} {
		if got := policy.Decide(offset); got != want {
			t.Fatalf("Decide(%d) = %v, want %v", offset, got, want)
		}
	}
}

func TestPriorityEscalatesAtFinalOffset(t *testing.T) {
	policy := DefaultPolicy()
	if got := policy.PriorityFor(7); got != "high" {
		t.Fatalf("PriorityFor(7) = %s, want high", got)
	}
	if got := policy.PriorityFor(30); got != "urgent" {
		t.Fatalf("PriorityFor(30) = %s, want urgent", got)
	}
}
