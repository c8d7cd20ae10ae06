package journal

import (
	"testing"
	"time"

	"github.com/binodsarki28/journal-backend/internal/models"
	"gorm.io/datatypes"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixtureEntries() []models.JournalEntry {
	return []models.JournalEntry{
		{
			Title:       "Morning run",
			EntryDate:   day(2024, 1, 1),
			PrimaryMood: "happy",
			Tags:        datatypes.NewJSONSlice([]string{"exercise"}),
		},
		{
			Title:       "Trip planning",
			EntryDate:   day(2024, 1, 2),
			PrimaryMood: "excited",
			Tags:        datatypes.NewJSONSlice([]string{"travel", "planning"}),
		},
		{
			Title:       "Quiet day",
			EntryDate:   day(2024, 1, 3),
			PrimaryMood: "calm",
			Tags:        datatypes.NewJSONSlice([]string{"home"}),
		},
		{
			Title:       "TRIP day one",
			EntryDate:   day(2024, 1, 4),
			PrimaryMood: "Happy",
			Tags:        datatypes.NewJSONSlice([]string{"Travel"}),
		},
	}
}

func TestSearch_NoFiltersReturnsMostRecentFirst(t *testing.T) {
	got := Search(fixtureEntries(), SearchQuery{Page: 1, PageSize: 10})

	if got.Total != 4 {
		t.Errorf("total: got %d, want 4", got.Total)
	}
	if len(got.Entries) != 4 {
		t.Fatalf("page length: got %d, want 4", len(got.Entries))
	}
	if !got.Entries[0].EntryDate.Equal(day(2024, 1, 4)) {
		t.Errorf("first entry date: got %v, want most recent", got.Entries[0].EntryDate)
	}
	if !got.Entries[3].EntryDate.Equal(day(2024, 1, 1)) {
		t.Errorf("last entry date: got %v, want oldest", got.Entries[3].EntryDate)
	}
}

func TestSearch_TitleSubstringCaseInsensitive(t *testing.T) {
	got := Search(fixtureEntries(), SearchQuery{Title: "trip", Page: 1, PageSize: 10})
	if got.Total != 2 {
		t.Errorf("total: got %d, want 2", got.Total)
	}
}

func TestSearch_MoodExactCaseInsensitive(t *testing.T) {
	got := Search(fixtureEntries(), SearchQuery{Mood: "Happy", Page: 1, PageSize: 10})
	// "happy" and "Happy" match; "excited" and "calm" do not.
	if got.Total != 2 {
		t.Errorf("total: got %d, want 2", got.Total)
	}

	entries := append(fixtureEntries(), models.JournalEntry{
		Title: "x", EntryDate: day(2024, 1, 5), PrimaryMood: "happyish",
	})
	got = Search(entries, SearchQuery{Mood: "Happy", Page: 1, PageSize: 10})
	if got.Total != 2 {
		t.Errorf("mood must be exact match, not substring: got %d, want 2", got.Total)
	}
}

func TestSearch_TagSubstringCaseInsensitive(t *testing.T) {
	got := Search(fixtureEntries(), SearchQuery{Tag: "trav", Page: 1, PageSize: 10})
	if got.Total != 2 {
		t.Errorf("total: got %d, want 2", got.Total)
	}
}

func TestSearch_DateRange(t *testing.T) {
	from := day(2024, 1, 2)
	to := day(2024, 1, 3)
	got := Search(fixtureEntries(), SearchQuery{FromDate: &from, ToDate: &to, Page: 1, PageSize: 10})
	if got.Total != 2 {
		t.Errorf("total: got %d, want 2", got.Total)
	}

	// Bounds are inclusive.
	single := day(2024, 1, 1)
	got = Search(fixtureEntries(), SearchQuery{FromDate: &single, ToDate: &single, Page: 1, PageSize: 10})
	if got.Total != 1 {
		t.Errorf("inclusive bound: got %d, want 1", got.Total)
	}
}

func TestSearch_FiltersAreConjunctive(t *testing.T) {
	got := Search(fixtureEntries(), SearchQuery{Title: "trip", Mood: "excited", Page: 1, PageSize: 10})
	if got.Total != 1 {
		t.Errorf("total: got %d, want 1", got.Total)
	}
	if got.Entries[0].Title != "Trip planning" {
		t.Errorf("entry: got %q", got.Entries[0].Title)
	}
}

func TestSearch_BlankFiltersAreIgnored(t *testing.T) {
	got := Search(fixtureEntries(), SearchQuery{Title: "   ", Mood: "", Tag: "\t", Page: 1, PageSize: 10})
	if got.Total != 4 {
		t.Errorf("total: got %d, want 4", got.Total)
	}
}

func TestSearch_Pagination(t *testing.T) {
	got := Search(fixtureEntries(), SearchQuery{Page: 1, PageSize: 3})
	if len(got.Entries) != 3 || got.Total != 4 {
		t.Errorf("page 1: got %d entries total %d, want 3 entries total 4", len(got.Entries), got.Total)
	}

	got = Search(fixtureEntries(), SearchQuery{Page: 2, PageSize: 3})
	if len(got.Entries) != 1 {
		t.Errorf("page 2: got %d entries, want 1", len(got.Entries))
	}
	if !got.Entries[0].EntryDate.Equal(day(2024, 1, 1)) {
		t.Errorf("page 2 entry date: got %v", got.Entries[0].EntryDate)
	}

	// A page past the end is empty, not an error.
	got = Search(fixtureEntries(), SearchQuery{Page: 9, PageSize: 3})
	if len(got.Entries) != 0 || got.Total != 4 {
		t.Errorf("page past end: got %d entries total %d, want 0 entries total 4", len(got.Entries), got.Total)
	}
}

func TestSearch_NormalizesBadPagination(t *testing.T) {
	got := Search(fixtureEntries(), SearchQuery{Page: 0, PageSize: -5})
	if got.Page != 1 || got.PageSize != 10 {
		t.Errorf("got page %d size %d, want 1 and 10", got.Page, got.PageSize)
	}
}
