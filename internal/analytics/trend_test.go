package analytics

import (
	"testing"
	"time"

	"github.com/binodsarki28/journal-backend/internal/models"
)

func TestWordCountTrend_SortedAscending(t *testing.T) {
	entries := []models.JournalEntry{
		{EntryDate: day(2024, 2, 3), WordCount: 30, PrimaryMood: "calm"},
		{EntryDate: day(2024, 2, 1), WordCount: 10, PrimaryMood: "happy"},
		{EntryDate: day(2024, 2, 2), WordCount: 20, PrimaryMood: "sad"},
	}

	got := WordCountTrend(entries)
	if len(got) != 3 {
		t.Fatalf("got %d points, want 3", len(got))
	}

	wantDates := []time.Time{day(2024, 2, 1), day(2024, 2, 2), day(2024, 2, 3)}
	wantCounts := []int{10, 20, 30}
	wantMoods := []string{"happy", "sad", "calm"}
	for i, p := range got {
		if !p.Date.Equal(wantDates[i]) {
			t.Errorf("point %d date: got %v, want %v", i, p.Date, wantDates[i])
		}
		if p.WordCount != wantCounts[i] {
			t.Errorf("point %d word count: got %d, want %d", i, p.WordCount, wantCounts[i])
		}
		if p.PrimaryMood != wantMoods[i] {
			t.Errorf("point %d mood: got %q, want %q", i, p.PrimaryMood, wantMoods[i])
		}
	}
}

func TestWordCountTrend_DoesNotMutateInput(t *testing.T) {
	entries := []models.JournalEntry{
		{EntryDate: day(2024, 2, 3)},
		{EntryDate: day(2024, 2, 1)},
	}
	WordCountTrend(entries)
	if !entries[0].EntryDate.Equal(day(2024, 2, 3)) {
		t.Error("input slice was reordered")
	}
}

func TestWordCountTrend_Empty(t *testing.T) {
	got := WordCountTrend(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("want empty slice, got %v", got)
	}
}
