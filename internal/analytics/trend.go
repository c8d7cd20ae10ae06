package analytics

import (
	"sort"
	"time"

	"github.com/binodsarki28/journal-backend/internal/models"
)

// TrendPoint is one sample in the chronological word-count series.
type TrendPoint struct {
	Date        time.Time `json:"date"`
	WordCount   int       `json:"word_count"`
	PrimaryMood string    `json:"primary_mood"`
}

// WordCountTrend emits one point per entry, ascending by entry date.
// Dates are unique per user, so no within-day aggregation is needed.
func WordCountTrend(entries []models.JournalEntry) []TrendPoint {
	sorted := make([]models.JournalEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].EntryDate.Before(sorted[j].EntryDate)
	})

	points := make([]TrendPoint, 0, len(sorted))
	for _, e := range sorted {
		points = append(points, TrendPoint{
			Date:        e.EntryDate,
			WordCount:   e.WordCount,
			PrimaryMood: e.PrimaryMood,
		})
	}
	return points
}
