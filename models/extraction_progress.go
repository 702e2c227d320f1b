package models

import (
	"fmt"
	"time"
)

// ExtractionProgress represents real-time metrics for an ffmpeg audio
// extraction run, parsed from the tool's stderr output.
type ExtractionProgress struct {
	// Current position in the source file
	CurrentTime string // Current timestamp (HH:MM:SS.MS)

	// Performance metrics
	Bitrate string  // Current bitrate (e.g., "1411.2kbits/s")
	Speed   float64 // Extraction speed multiplier (e.g., 42.1 means 42.1x realtime)

	// Size information
	Size string // Current output size (e.g., "1024kB")

	// Progress calculation
	TotalDuration float64 // Total duration in seconds (for percentage calculation)
	Progress      float64 // Percentage complete (0-100)

	// Metadata
	State     ProgressState // Current state of the extraction
	StartTime time.Time     // When extraction started
	UpdatedAt time.Time     // Last update timestamp
}

// ProgressState represents the current state of an extraction task.
type ProgressState string

const (
	ProgressStateQueued     ProgressState = "queued"     // Waiting to start
	ProgressStateStarting   ProgressState = "starting"   // Initializing
	ProgressStateExtracting ProgressState = "extracting" // Actively extracting
	ProgressStateCompleted  ProgressState = "completed"  // Successfully finished
	ProgressStateFailed     ProgressState = "failed"     // Encountered an error
	ProgressStateCancelled  ProgressState = "cancelled"  // User cancelled
)

// ProgressCallback is a function that receives progress updates during extraction.
type ProgressCallback func(progress *ExtractionProgress)

// NewExtractionProgress creates a new progress tracker.
func NewExtractionProgress(totalDuration float64) *ExtractionProgress {
	return &ExtractionProgress{
		TotalDuration: totalDuration,
		State:         ProgressStateQueued,
		StartTime:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

// CalculateProgress updates the progress percentage based on current time.
func (ep *ExtractionProgress) CalculateProgress(currentSeconds float64) {
	if ep.TotalDuration > 0 {
		ep.Progress = (currentSeconds / ep.TotalDuration) * 100
		if ep.Progress > 100 {
			ep.Progress = 100
		}
	}
	ep.UpdatedAt = time.Now()
}

// EstimatedTimeRemaining calculates ETA based on elapsed time and progress.
func (ep *ExtractionProgress) EstimatedTimeRemaining() time.Duration {
	if ep.Speed <= 0 || ep.Progress <= 0 {
		return 0
	}

	elapsed := time.Since(ep.StartTime)
	totalEstimated := time.Duration(float64(elapsed) / (ep.Progress / 100))
	remaining := totalEstimated - elapsed

	if remaining < 0 {
		return 0
	}
	return remaining
}

// FormatSummary returns a human-readable summary of the progress.
func (ep *ExtractionProgress) FormatSummary() string {
	eta := ep.EstimatedTimeRemaining()
	return fmt.Sprintf(
		"Progress: %.1f%% | Speed: %.2fx | Size: %s | ETA: %s",
		ep.Progress,
		ep.Speed,
		ep.Size,
		formatDuration(eta),
	)
}

// formatDuration converts a duration to a human-readable string.
func formatDuration(d time.Duration) string {
	if d == 0 {
		return "calculating..."
	}

	seconds := int(d.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	seconds = seconds % 60

	if minutes < 60 {
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	}

	hours := minutes / 60
	minutes = minutes % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}
