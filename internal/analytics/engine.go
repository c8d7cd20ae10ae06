package analytics

import (
	"time"

	"github.com/binodsarki28/journal-backend/internal/models"
)

// Result is the composite analytics report for one user's full history.
// It is recomputed from the entry snapshot on every request and never
// persisted.
type Result struct {
	CurrentStreak    int            `json:"current_streak"`
	LongestStreak    int            `json:"longest_streak"`
	MissedDays       int            `json:"missed_days"`
	MoodDistribution map[string]int `json:"mood_distribution"`
	TagDistribution  map[string]int `json:"tag_distribution"`
	WordCountTrend   []TrendPoint   `json:"word_count_trend"`
}

// Compute assembles the full analytics report from one user's entry
// snapshot. today is supplied by the caller so the computation stays
// deterministic. An empty snapshot short-circuits to a zero-valued result
// with empty (not nil) distributions.
func Compute(entries []models.JournalEntry, today time.Time) Result {
	if len(entries) == 0 {
		return Result{
			MoodDistribution: map[string]int{},
			TagDistribution:  map[string]int{},
			WordCountTrend:   []TrendPoint{},
		}
	}

	dates := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		dates = append(dates, e.EntryDate)
	}
	streaks := CalculateStreaks(dates, today)

	return Result{
		CurrentStreak:    streaks.CurrentStreak,
		LongestStreak:    streaks.LongestStreak,
		MissedDays:       streaks.MissedDays,
		MoodDistribution: MoodDistribution(entries),
		TagDistribution:  TagDistribution(entries),
		WordCountTrend:   WordCountTrend(entries),
	}
}
