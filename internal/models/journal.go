package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// JournalEntry is one journal record for a single calendar day.
// EntryDate carries no time-of-day component (normalized to midnight UTC);
// the unique index on (user_id, entry_date) guarantees at most one entry
// per user per day, which makes the upsert idempotent.
type JournalEntry struct {
	ID             uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:idx_journal_user_date" json:"user_id"`
	Title          string                      `gorm:"size:100;not null" json:"title"`
	Content        string                      `gorm:"type:text" json:"content"`
	EntryDate      time.Time                   `gorm:"not null;uniqueIndex:idx_journal_user_date" json:"entry_date"`
	PrimaryMood    string                      `gorm:"size:50;not null" json:"primary_mood"`
	SecondaryMoods datatypes.JSONSlice[string] `json:"secondary_moods"`
	Tags           datatypes.JSONSlice[string] `json:"tags"`
	WordCount      int                         `gorm:"default:0" json:"word_count"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}
