package dto

import (
	"github.com/binodsarki28/journal-backend/internal/models"
)

// UpsertJournalRequest creates or replaces the entry for (user, entry_date).
// WordCount is always recomputed server-side and cannot be supplied.
type UpsertJournalRequest struct {
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	EntryDate      string   `json:"entry_date"` // YYYY-MM-DD
	PrimaryMood    string   `json:"primary_mood"`
	SecondaryMoods []string `json:"secondary_moods"`
	Tags           []string `json:"tags"`
}

type JournalListResponse struct {
	Entries  []models.JournalEntry `json:"entries"`
	Total    int                   `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
}

type HasEntryTodayResponse struct {
	HasEntryToday bool `json:"has_entry_today"`
}

type DeleteJournalResponse struct {
	Message string `json:"message"`
}
