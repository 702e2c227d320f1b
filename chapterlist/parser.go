// Package chapterlist turns free-form chapter text into ordered time/title entries.
//
// The input is whatever a user pastes or loads: one chapter per line, or a
// whole chapter list packed into a single line with timestamps acting as
// separators. Parsing is best-effort and never fails; text that yields no
// usable entries simply produces an empty list.
package chapterlist

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"chapterbook/models"
)

var (
	// timeTokenPattern matches clock-like tokens while scanning a line:
	// H:MM:SS or H:MM (minutes:seconds), each with an optional 1-3 digit
	// fraction. Matching is greedy and leftmost-first.
	timeTokenPattern = regexp.MustCompile(`\d{1,2}:\d{2}(?::\d{2})?(?:\.\d{1,3})?`)

	// leadingSeparators and trailingSeparators strip the "- " style junk
	// between a timestamp and the title next to it.
	leadingSeparators  = regexp.MustCompile(`^[-\s]+`)
	trailingSeparators = regexp.MustCompile(`[-\s]+$`)
)

// Parse extracts (time, title) entries from pasted or loaded chapter text.
//
// Two layouts are recognized:
//
//   - Single-line: the whole list on one line, e.g.
//     "0:00 Intro - 1:30 Verse - 3:45 Chorus". When the only non-empty
//     line carries two or more time tokens, each token acts as a
//     separator and the text up to the next token becomes the title.
//   - Per-line: one or more chapters per physical line. For each token
//     the text after it (up to the next token) is preferred as the
//     title, falling back to the text before it.
//
// Times are normalized to the canonical H:MM:SS.mmm form via
// NormalizeTime. Entries whose title is empty after stripping are
// dropped silently. The result preserves scan order; it is never
// sorted by time. Parse holds no state and is safe for concurrent use.
func Parse(text string) []models.ChapterEntry {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	lines := strings.Split(trimmed, "\n")
	if len(lines) == 1 {
		if entries, ok := parseSingleLine(lines[0]); ok {
			return entries
		}
	}

	return parseLines(lines)
}

// parseSingleLine handles the packed single-line layout. It reports
// ok=false when fewer than two time tokens are present, in which case
// the caller falls back to per-line parsing.
func parseSingleLine(line string) ([]models.ChapterEntry, bool) {
	tokens := timeTokenPattern.FindAllStringIndex(line, -1)
	if len(tokens) < 2 {
		return nil, false
	}

	var entries []models.ChapterEntry
	for i, tok := range tokens {
		end := len(line)
		if i+1 < len(tokens) {
			end = tokens[i+1][0]
		}

		title := stripTitle(line[tok[1]:end])
		if title == "" {
			continue
		}

		entries = append(entries, models.ChapterEntry{
			Time:  NormalizeTime(line[tok[0]:tok[1]]),
			Title: title,
		})
	}
	return entries, true
}

// parseLines handles the per-line layout. Each token on a line is
// titled independently, using the neighboring tokens as boundaries:
// the text after the token wins when non-empty, otherwise the text
// before it is used.
func parseLines(lines []string) []models.ChapterEntry {
	var entries []models.ChapterEntry

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		tokens := timeTokenPattern.FindAllStringIndex(line, -1)
		for i, tok := range tokens {
			prevEnd := 0
			if i > 0 {
				prevEnd = tokens[i-1][1]
			}
			nextStart := len(line)
			if i+1 < len(tokens) {
				nextStart = tokens[i+1][0]
			}

			before := strings.TrimSpace(line[prevEnd:tok[0]])
			after := strings.TrimSpace(line[tok[1]:nextStart])

			title := after
			if title == "" {
				title = before
			}
			title = stripTitle(title)
			if title == "" {
				continue
			}

			entries = append(entries, models.ChapterEntry{
				Time:  NormalizeTime(line[tok[0]:tok[1]]),
				Title: title,
			})
		}
	}
	return entries
}

// stripTitle removes surrounding whitespace and runs of '-' separator
// characters from both ends of a candidate title.
func stripTitle(s string) string {
	s = leadingSeparators.ReplaceAllString(s, "")
	return trailingSeparators.ReplaceAllString(s, "")
}

// NormalizeTime converts a scanned time token to the canonical
// H:MM:SS.mmm string.
//
// A missing millisecond suffix defaults to "000"; a present one is
// right-padded with zeros and truncated to exactly three digits. Two
// colon-separated fields are read as MM:SS with an implicit zero hour;
// three fields as H:MM:SS. Tokens with any other field count, or with
// non-numeric fields, are passed through unmodified so callers can
// treat them as a best-effort, non-fatal condition.
//
// Example:
//
//	chapterlist.NormalizeTime("1:30")      // "0:01:30.000"
//	chapterlist.NormalizeTime("1:02:03.5") // "1:02:03.500"
func NormalizeTime(token string) string {
	parts := strings.Split(token, ".")
	timePart := parts[0]
	msPart := "000"
	if len(parts) > 1 {
		msPart = parts[1]
	}

	for len(msPart) < 3 {
		msPart += "0"
	}
	msPart = msPart[:3]

	fields := strings.Split(timePart, ":")

	var hours, minutes, seconds int
	var err error
	switch len(fields) {
	case 2: // MM:SS
		if minutes, err = strconv.Atoi(fields[0]); err != nil {
			return token
		}
		if seconds, err = strconv.Atoi(fields[1]); err != nil {
			return token
		}
	case 3: // H:MM:SS
		if hours, err = strconv.Atoi(fields[0]); err != nil {
			return token
		}
		if minutes, err = strconv.Atoi(fields[1]); err != nil {
			return token
		}
		if seconds, err = strconv.Atoi(fields[2]); err != nil {
			return token
		}
	default:
		return token
	}

	return fmt.Sprintf("%d:%02d:%02d.%s", hours, minutes, seconds, msPart)
}
