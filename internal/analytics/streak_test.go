package analytics

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateStreaks_EmptySet(t *testing.T) {
	got := CalculateStreaks(nil, day(2024, 1, 3))
	if got.CurrentStreak != 0 || got.LongestStreak != 0 || got.MissedDays != 0 {
		t.Errorf("empty set: got %+v, want all zeros", got)
	}
}

func TestCalculateStreaks_ThreeConsecutiveDaysEndingToday(t *testing.T) {
	dates := []time.Time{day(2024, 1, 1), day(2024, 1, 2), day(2024, 1, 3)}
	got := CalculateStreaks(dates, day(2024, 1, 3))

	if got.CurrentStreak != 3 {
		t.Errorf("current streak: got %d, want 3", got.CurrentStreak)
	}
	if got.LongestStreak != 3 {
		t.Errorf("longest streak: got %d, want 3", got.LongestStreak)
	}
	if got.MissedDays != 0 {
		t.Errorf("missed days: got %d, want 0", got.MissedDays)
	}
}

func TestCalculateStreaks_NoEntryTodayBreaksCurrentStreak(t *testing.T) {
	// A past 5-day run but nothing today: current must be 0, longest 5.
	dates := []time.Time{
		day(2024, 1, 1), day(2024, 1, 2), day(2024, 1, 3),
		day(2024, 1, 4), day(2024, 1, 5),
	}
	got := CalculateStreaks(dates, day(2024, 1, 10))

	if got.CurrentStreak != 0 {
		t.Errorf("current streak: got %d, want 0", got.CurrentStreak)
	}
	if got.LongestStreak != 5 {
		t.Errorf("longest streak: got %d, want 5", got.LongestStreak)
	}
}

func TestCalculateStreaks_MissedDays(t *testing.T) {
	dates := []time.Time{day(2024, 1, 1), day(2024, 1, 5)}
	got := CalculateStreaks(dates, day(2024, 1, 5))

	// 5-day span, 2 entries -> 3 missed.
	if got.MissedDays != 3 {
		t.Errorf("missed days: got %d, want 3", got.MissedDays)
	}
	if got.LongestStreak != 1 {
		t.Errorf("longest streak: got %d, want 1", got.LongestStreak)
	}
	if got.CurrentStreak != 1 {
		t.Errorf("current streak: got %d, want 1", got.CurrentStreak)
	}
}

func TestCalculateStreaks_SingleDateToday(t *testing.T) {
	got := CalculateStreaks([]time.Time{day(2024, 6, 15)}, day(2024, 6, 15))

	if got.CurrentStreak != 1 {
		t.Errorf("current streak: got %d, want 1", got.CurrentStreak)
	}
	if got.LongestStreak != 1 {
		t.Errorf("longest streak: got %d, want 1", got.LongestStreak)
	}
	if got.MissedDays != 0 {
		t.Errorf("missed days: got %d, want 0", got.MissedDays)
	}
}

func TestCalculateStreaks_GapResetsRun(t *testing.T) {
	dates := []time.Time{
		day(2024, 3, 1), day(2024, 3, 2),
		day(2024, 3, 10), day(2024, 3, 11), day(2024, 3, 12),
	}
	got := CalculateStreaks(dates, day(2024, 3, 12))

	if got.LongestStreak != 3 {
		t.Errorf("longest streak: got %d, want 3", got.LongestStreak)
	}
	if got.CurrentStreak != 3 {
		t.Errorf("current streak: got %d, want 3", got.CurrentStreak)
	}
	// 12-day span with 5 entries.
	if got.MissedDays != 7 {
		t.Errorf("missed days: got %d, want 7", got.MissedDays)
	}
}

func TestCalculateStreaks_MissedDaysNeverNegative(t *testing.T) {
	for _, today := range []time.Time{
		day(2024, 1, 1), day(2024, 1, 5), day(2024, 2, 29),
	} {
		got := CalculateStreaks([]time.Time{day(2024, 1, 1)}, today)
		if got.MissedDays < 0 {
			t.Errorf("today %v: missed days %d is negative", today, got.MissedDays)
		}
	}
}

func TestCalculateStreaks_NormalizesTimeOfDay(t *testing.T) {
	// Inputs with a time component and a non-UTC zone still count as
	// calendar days.
	loc := time.FixedZone("UTC+5", 5*3600)
	dates := []time.Time{
		time.Date(2024, 1, 2, 23, 30, 0, 0, loc),
		time.Date(2024, 1, 3, 8, 15, 0, 0, loc),
	}
	got := CalculateStreaks(dates, time.Date(2024, 1, 3, 18, 0, 0, 0, loc))

	if got.CurrentStreak != 2 {
		t.Errorf("current streak: got %d, want 2", got.CurrentStreak)
	}
}

func TestDay(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*3600)
	got := Day(time.Date(2024, 7, 4, 22, 45, 31, 12, loc))
	want := day(2024, 7, 4)
	if !got.Equal(want) {
		t.Errorf("Day: got %v, want %v", got, want)
	}
}
