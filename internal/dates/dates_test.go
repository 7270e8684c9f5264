package dates

import (
	"errors"
	"testing"
)

// -------------------------
// Month bounds
// -------------------------

func TestStartOfMonth(t *testing.T) {
	got, err := StartOfMonth(2022, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 2022-01-01T00:00:00.000Z
	if got != 1640995200000 {
		t.Fatalf("expected 1640995200000, got %d", got)
	}
}

func TestEndOfMonth(t *testing.T) {
	got, err := EndOfMonth(2022, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 2022-01-31T23:59:59.999Z
	if got != 1643673599999 {
		t.Fatalf("expected 1643673599999, got %d", got)
	}
}

func TestMonthBoundsAreAdjacent(t *testing.T) {
	// end of month + 1ms == start of next month, across year boundary too
	cases := []struct {
		year, month         int
		nextYear, nextMonth int
	}{
		{2022, 1, 2022, 2},
		{2022, 12, 2023, 1},
		{2020, 2, 2020, 3}, // leap February, 29 days
		{2021, 2, 2021, 3}, // non-leap February, 28 days
	}
	for _, tc := range cases {
		end, err := EndOfMonth(tc.year, tc.month)
		if err != nil {
			t.Fatalf("EndOfMonth(%d,%d): %v", tc.year, tc.month, err)
		}
		start, err := StartOfMonth(tc.nextYear, tc.nextMonth)
		if err != nil {
			t.Fatalf("StartOfMonth(%d,%d): %v", tc.nextYear, tc.nextMonth, err)
		}
		if end+1 != start {
			t.Fatalf("%d-%02d: end %d + 1 != next start %d", tc.year, tc.month, end, start)
		}
	}
}

// -------------------------
// Day bounds
// -------------------------

func TestStartOfDay(t *testing.T) {
	got, err := StartOfDay(2022, 1, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1642204800000 {
		t.Fatalf("expected 1642204800000, got %d", got)
	}
}

func TestEndOfDay(t *testing.T) {
	got, err := EndOfDay(2022, 1, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1642291199999 {
		t.Fatalf("expected 1642291199999, got %d", got)
	}
}

func TestLeapDay(t *testing.T) {
	if _, err := StartOfDay(2020, 2, 29); err != nil {
		t.Fatalf("2020-02-29 must be valid: %v", err)
	}
	if _, err := EndOfDay(2020, 2, 29); err != nil {
		t.Fatalf("2020-02-29 must be valid: %v", err)
	}
}

// -------------------------
// Invalid dates
// -------------------------

func TestInvalidDates(t *testing.T) {
	cases := []struct {
		name             string
		year, month, day int
	}{
		{"month too big", 2022, 13, 1},
		{"month zero", 2022, 0, 1},
		{"day too big", 2022, 1, 32},
		{"day zero", 2022, 1, 0},
		{"feb 30", 2022, 2, 30},
		{"feb 29 non-leap", 2021, 2, 29},
		{"apr 31", 2022, 4, 31},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := StartOfDay(tc.year, tc.month, tc.day); !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("StartOfDay: expected ErrInvalidDate, got %v", err)
			}
			if _, err := EndOfDay(tc.year, tc.month, tc.day); !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("EndOfDay: expected ErrInvalidDate, got %v", err)
			}
		})
	}
}

func TestInvalidMonths(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		if _, err := StartOfMonth(2022, month); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("StartOfMonth(2022,%d): expected ErrInvalidDate, got %v", month, err)
		}
		if _, err := EndOfMonth(2022, month); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("EndOfMonth(2022,%d): expected ErrInvalidDate, got %v", month, err)
		}
	}
}
