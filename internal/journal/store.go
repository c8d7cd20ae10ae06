package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/binodsarki28/journal-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the persistence collaborator for journal entries. All reads
// return a snapshot the pure analytics/search code computes over.
type Store interface {
	// FetchEntries returns the user's full history, ascending by entry date.
	FetchEntries(userID uuid.UUID) ([]models.JournalEntry, error)
	// FetchEntry returns the entry for the given day, or nil when absent.
	FetchEntry(userID uuid.UUID, date time.Time) (*models.JournalEntry, error)
	// UpsertEntry creates or updates the row for (entry.UserID,
	// entry.EntryDate) and writes the persisted row back into entry.
	UpsertEntry(entry *models.JournalEntry) error
	// DeleteEntry removes the entry and reports whether a row existed.
	DeleteEntry(userID, entryID uuid.UUID) (bool, error)
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) FetchEntries(userID uuid.UUID) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := s.db.Where("user_id = ?", userID).
		Order("entry_date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch journal entries: %w", err)
	}
	return entries, nil
}

func (s *gormStore) FetchEntry(userID uuid.UUID, date time.Time) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := s.db.Where("user_id = ? AND entry_date = ?", userID, date).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch journal entry: %w", err)
	}
	return &entry, nil
}

// UpsertEntry serializes the read-check-write against concurrent upserts
// for the same user and day with a row lock; the unique index on
// (user_id, entry_date) backstops the one-entry-per-day invariant.
func (s *gormStore) UpsertEntry(entry *models.JournalEntry) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.JournalEntry
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND entry_date = ?", entry.UserID, entry.EntryDate).
			First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			entry.ID = uuid.New()
			if err := tx.Create(entry).Error; err != nil {
				return fmt.Errorf("failed to create journal entry: %w", err)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to look up journal entry: %w", err)
		}

		existing.Title = entry.Title
		existing.Content = entry.Content
		existing.PrimaryMood = entry.PrimaryMood
		existing.SecondaryMoods = entry.SecondaryMoods
		existing.Tags = entry.Tags
		existing.WordCount = entry.WordCount
		existing.UpdatedAt = entry.UpdatedAt
		if err := tx.Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to update journal entry: %w", err)
		}

		*entry = existing
		return nil
	})
}

func (s *gormStore) DeleteEntry(userID, entryID uuid.UUID) (bool, error) {
	result := s.db.Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.JournalEntry{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete journal entry: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
