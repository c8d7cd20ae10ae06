package journal

import (
	"sort"
	"strings"
	"time"

	"github.com/binodsarki28/journal-backend/internal/models"
)

// SearchQuery holds the optional filters and the pagination window.
// Blank or whitespace-only filter strings impose no constraint; all
// present filters are combined with AND.
type SearchQuery struct {
	Title    string
	Mood     string
	Tag      string
	FromDate *time.Time
	ToDate   *time.Time
	Page     int
	PageSize int
}

// SearchResult is one page of matches plus the total match count
// computed before pagination.
type SearchResult struct {
	Entries  []models.JournalEntry `json:"entries"`
	Total    int                   `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

// Search filters a snapshot of one user's entries and paginates the
// result, most recent entry date first. Title and tag filters are
// case-insensitive substring matches, the mood filter is a
// case-insensitive exact match, and date bounds are inclusive. A page
// past the end yields an empty page, not an error.
func Search(entries []models.JournalEntry, q SearchQuery) SearchResult {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}

	title := strings.ToLower(strings.TrimSpace(q.Title))
	mood := strings.ToLower(strings.TrimSpace(q.Mood))
	tag := strings.ToLower(strings.TrimSpace(q.Tag))

	matched := make([]models.JournalEntry, 0, len(entries))
	for _, e := range entries {
		if title != "" && !strings.Contains(strings.ToLower(e.Title), title) {
			continue
		}
		if mood != "" && strings.ToLower(e.PrimaryMood) != mood {
			continue
		}
		if tag != "" && !hasTagContaining(e.Tags, tag) {
			continue
		}
		if q.FromDate != nil && e.EntryDate.Before(*q.FromDate) {
			continue
		}
		if q.ToDate != nil && e.EntryDate.After(*q.ToDate) {
			continue
		}
		matched = append(matched, e)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].EntryDate.After(matched[j].EntryDate)
	})

	total := len(matched)
	start := (q.Page - 1) * q.PageSize
	if start > total {
		start = total
	}
	end := start + q.PageSize
	if end > total {
		end = total
	}

	return SearchResult{
		Entries:  matched[start:end],
		Total:    total,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
}

func hasTagContaining(tags []string, needle string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}
