package models

import (
	"fmt"
	"strings"
)

// ChapterEntry is one row of a chapter table: a time string and a title.
//
// Time is normally the canonical H:MM:SS.mmm string produced by the
// chapter-list parser, but entries loaded from a chapter file keep
// whatever time string the file carried. Duplicate times are allowed;
// ordering is owned by the containing table.
type ChapterEntry struct {
	Time  string `json:"time"`
	Title string `json:"title"`
}

// NewChapterEntry creates a validated ChapterEntry.
//
// Returns an error if the entry parameters are invalid:
//   - Time cannot be empty or whitespace-only
//   - Title cannot be empty or whitespace-only
//
// Example:
//
//	entry, err := models.NewChapterEntry("0:01:30.000", "Verse")
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewChapterEntry(timeStr, title string) (*ChapterEntry, error) {
	e := &ChapterEntry{
		Time:  timeStr,
		Title: title,
	}
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chapter entry: %w", err)
	}
	return e, nil
}

// Validate checks if the ChapterEntry has valid data.
//
// Returns an error if:
//   - Time is empty or whitespace-only
//   - Title is empty or whitespace-only
func (e *ChapterEntry) Validate() error {
	if strings.TrimSpace(e.Time) == "" {
		return fmt.Errorf("time cannot be empty")
	}

	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("title cannot be empty")
	}

	return nil
}
