package journal

import (
	"errors"
	"strings"
	"time"

	"github.com/binodsarki28/journal-backend/internal/analytics"
	"github.com/binodsarki28/journal-backend/internal/dto"
	"github.com/binodsarki28/journal-backend/internal/models"
	"github.com/binodsarki28/journal-backend/internal/report"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	ErrFutureDate            = errors.New("cannot create a journal entry for a future date")
	ErrInvalidDate           = errors.New("entry date must be in YYYY-MM-DD format")
	ErrTitleRequired         = errors.New("title is required")
	ErrTitleTooLong          = errors.New("title can be at most 100 characters")
	ErrContentRequired       = errors.New("content is required")
	ErrMoodRequired          = errors.New("primary mood is required")
	ErrTooManySecondaryMoods = errors.New("at most 2 secondary moods are allowed")
	ErrEntryNotFound         = errors.New("journal entry not found")
)

// Service wires the pure analytics and search code to the Store. It holds
// no state between requests: every read fetches a fresh snapshot.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Upsert validates the payload, recomputes the word count and delegates
// to the store's idempotent (user, date) upsert. The entry date's day
// part is compared against today in the server's local timezone;
// future-dated entries are rejected.
func (s *Service) Upsert(userID uuid.UUID, req dto.UpsertJournalRequest) (*models.JournalEntry, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(req.EntryDate))
	if err != nil {
		return nil, ErrInvalidDate
	}
	day := analytics.Day(date)
	if day.After(analytics.Day(s.now())) {
		return nil, ErrFutureDate
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}
	if len(req.Title) > 100 {
		return nil, ErrTitleTooLong
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}
	if strings.TrimSpace(req.PrimaryMood) == "" {
		return nil, ErrMoodRequired
	}
	if len(req.SecondaryMoods) > 2 {
		return nil, ErrTooManySecondaryMoods
	}

	entry := &models.JournalEntry{
		UserID:         userID,
		Title:          req.Title,
		Content:        req.Content,
		EntryDate:      day,
		PrimaryMood:    req.PrimaryMood,
		SecondaryMoods: datatypes.NewJSONSlice(req.SecondaryMoods),
		Tags:           datatypes.NewJSONSlice(req.Tags),
		WordCount:      analytics.CountWords(req.Content),
		UpdatedAt:      s.now(),
	}

	if err := s.store.UpsertEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Analytics recomputes the full report from the user's current history.
func (s *Service) Analytics(userID uuid.UUID) (analytics.Result, error) {
	entries, err := s.store.FetchEntries(userID)
	if err != nil {
		return analytics.Result{}, err
	}
	return analytics.Compute(entries, s.now()), nil
}

// Search runs the compound filter over a snapshot of the user's entries.
func (s *Service) Search(userID uuid.UUID, q SearchQuery) (SearchResult, error) {
	entries, err := s.store.FetchEntries(userID)
	if err != nil {
		return SearchResult{}, err
	}
	return Search(entries, q), nil
}

// List returns one page of the user's entries, most recent first.
func (s *Service) List(userID uuid.UUID, page, pageSize int) (SearchResult, error) {
	return s.Search(userID, SearchQuery{Page: page, PageSize: pageSize})
}

// GetByDate returns the entry for the given day or ErrEntryNotFound.
func (s *Service) GetByDate(userID uuid.UUID, dateStr string) (*models.JournalEntry, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(dateStr))
	if err != nil {
		return nil, ErrInvalidDate
	}
	entry, err := s.store.FetchEntry(userID, analytics.Day(date))
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	return entry, nil
}

// Delete removes an entry by id. Deleting an entry that does not exist
// (or belongs to someone else) reports ErrEntryNotFound.
func (s *Service) Delete(userID, entryID uuid.UUID) error {
	removed, err := s.store.DeleteEntry(userID, entryID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrEntryNotFound
	}
	return nil
}

// HasEntryToday reports whether the user already wrote today.
func (s *Service) HasEntryToday(userID uuid.UUID) (bool, error) {
	entry, err := s.store.FetchEntry(userID, analytics.Day(s.now()))
	if err != nil {
		return false, err
	}
	return entry != nil, nil
}

// Report assembles the plain-text report data for entries in [from, to].
func (s *Service) Report(userID uuid.UUID, fromStr, toStr string) (*report.Report, error) {
	from, err := time.Parse("2006-01-02", strings.TrimSpace(fromStr))
	if err != nil {
		return nil, ErrInvalidDate
	}
	to, err := time.Parse("2006-01-02", strings.TrimSpace(toStr))
	if err != nil {
		return nil, ErrInvalidDate
	}
	entries, err := s.store.FetchEntries(userID)
	if err != nil {
		return nil, err
	}
	r := report.Build(entries, analytics.Day(from), analytics.Day(to))
	return &r, nil
}
