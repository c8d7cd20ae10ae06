package report

import (
	"sort"
	"time"

	"github.com/binodsarki28/journal-backend/internal/models"
)

// Item is one render-ready journal entry for a report, with the content
// reduced to plain text.
type Item struct {
	Date        time.Time `json:"date"`
	Title       string    `json:"title"`
	PrimaryMood string    `json:"primary_mood"`
	WordCount   int       `json:"word_count"`
	Content     string    `json:"content"`
}

// Report is the structured data a downstream renderer (PDF, HTML)
// consumes. Rendering itself happens outside this service.
type Report struct {
	From    time.Time `json:"from"`
	To      time.Time `json:"to"`
	Entries []Item    `json:"entries"`
}

// Build selects entries with from <= entryDate <= to and returns them
// ascending by date with stripped content.
func Build(entries []models.JournalEntry, from, to time.Time) Report {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		if e.EntryDate.Before(from) || e.EntryDate.After(to) {
			continue
		}
		items = append(items, Item{
			Date:        e.EntryDate,
			Title:       e.Title,
			PrimaryMood: e.PrimaryMood,
			WordCount:   e.WordCount,
			Content:     StripHTML(e.Content),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Date.Before(items[j].Date) })

	return Report{From: from, To: to, Entries: items}
}
