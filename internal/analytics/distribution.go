package analytics

import "github.com/binodsarki28/journal-backend/internal/models"

// MoodDistribution counts entries per primary mood. Matching is
// case-sensitive exact; an empty entry set yields an empty map, not nil.
func MoodDistribution(entries []models.JournalEntry) map[string]int {
	dist := make(map[string]int)
	for _, e := range entries {
		dist[e.PrimaryMood]++
	}
	return dist
}

// TagDistribution counts tag occurrences across all entries. A tag
// repeated within one entry counts each time it appears.
func TagDistribution(entries []models.JournalEntry) map[string]int {
	dist := make(map[string]int)
	for _, e := range entries {
		for _, tag := range e.Tags {
			dist[tag]++
		}
	}
	return dist
}
