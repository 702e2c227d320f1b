// Package chaptertable maintains the ordered chapter table and its
// on-disk format.
//
// The file format is the one the player reads back: one line per
// chapter, time string first, then the title, separated by a single
// space. When reading, the first run of whitespace is the sole field
// separator, so titles may contain further whitespace.
package chaptertable

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"chapterbook/internal/textenc"
	"chapterbook/models"
)

// fieldSeparator splits a stored line into its time and title fields.
var fieldSeparator = regexp.MustCompile(`\s+`)

// Table is an ordered collection of chapter entries.
//
// Rows keep insertion order unless SortByTime is called explicitly.
// Duplicate times are allowed. Table is not safe for concurrent
// mutation; each caller owns its own instance.
type Table struct {
	entries []models.ChapterEntry
}

// New creates an empty chapter table.
func New() *Table {
	return &Table{}
}

// FromEntries creates a table seeded with the given entries.
func FromEntries(entries []models.ChapterEntry) *Table {
	t := New()
	t.Append(entries...)
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the rows in table order.
func (t *Table) Entries() []models.ChapterEntry {
	out := make([]models.ChapterEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Append adds entries at the end of the table.
func (t *Table) Append(entries ...models.ChapterEntry) {
	t.entries = append(t.entries, entries...)
}

// InsertAt inserts an entry at the given row, clamping the position to
// the table bounds, and returns the row the entry ended up in.
func (t *Table) InsertAt(row int, entry models.ChapterEntry) int {
	if row < 0 || row > len(t.entries) {
		row = len(t.entries)
	}
	t.entries = append(t.entries, models.ChapterEntry{})
	copy(t.entries[row+1:], t.entries[row:])
	t.entries[row] = entry
	return row
}

// DeleteRows removes the given rows and returns the row indexes that
// were actually deleted, in descending order. Out-of-range and
// duplicate indexes are ignored.
func (t *Table) DeleteRows(rows []int) []int {
	seen := make(map[int]bool)
	var toDelete []int
	for _, row := range rows {
		if row >= 0 && row < len(t.entries) && !seen[row] {
			seen[row] = true
			toDelete = append(toDelete, row)
		}
	}

	// Delete from the bottom up so earlier indexes stay valid.
	sort.Sort(sort.Reverse(sort.IntSlice(toDelete)))
	for _, row := range toDelete {
		t.entries = append(t.entries[:row], t.entries[row+1:]...)
	}
	return toDelete
}

// SortByTime sorts rows ascending by their time field.
//
// The sort is stable and compares the canonical zero-padded time
// strings lexicographically, matching how the table widget orders its
// first column. Rows with equal times keep their relative order.
func (t *Table) SortByTime() {
	sort.SliceStable(t.entries, func(i, j int) bool {
		return t.entries[i].Time < t.entries[j].Time
	})
}

// Write serializes the table in the chapter file format.
func (t *Table) Write(w io.Writer) error {
	for _, entry := range t.entries {
		if _, err := fmt.Fprintf(w, "%s %s\n", entry.Time, entry.Title); err != nil {
			return fmt.Errorf("failed to write chapter line: %w", err)
		}
	}
	return nil
}

// Save writes the table to a chapter file as UTF-8.
func (t *Table) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chapter file: %w", err)
	}
	defer file.Close()

	if err := t.Write(file); err != nil {
		return fmt.Errorf("failed to save chapter file %s: %w", path, err)
	}
	return nil
}

// FromText builds a table from decoded chapter file text.
//
// Each non-empty line is split on its first whitespace run; the first
// field is the time string, the remainder is the title. A line with no
// title yields an entry with an empty title so the row count matches
// the file.
func FromText(text string) *Table {
	t := New()
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		fields := fieldSeparator.Split(line, 2)
		entry := models.ChapterEntry{Time: strings.TrimSpace(fields[0])}
		if len(fields) > 1 {
			entry.Title = strings.TrimSpace(fields[1])
		}
		t.Append(entry)
	}
	return t
}

// Load reads a chapter file, decoding its encoding as needed.
//
// A file that cannot be read or decoded is an error; file content that
// merely fails to look like chapters is not, and simply produces rows
// with whatever fields were present.
func Load(path string) (*Table, error) {
	text, err := textenc.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load chapter file: %w", err)
	}
	return FromText(text), nil
}
