package audio

import (
	"chapterbook/command"
	"chapterbook/models"
)

// ExtractCommand extends the base Command interface with audio
// extraction options.
type ExtractCommand interface {
	command.Command
	SetStart(start models.TimeCode) ExtractCommand
	SetEnd(end models.TimeCode) ExtractCommand
	SetChannels(channels int) ExtractCommand
	SetSampleRate(rate int) ExtractCommand
	SetFormat(format string) ExtractCommand
	SetTotalDuration(seconds float64) ExtractCommand
	SetProgressCallback(callback models.ProgressCallback) ExtractCommand

	// Output runs the command and returns the raw bytes ffmpeg wrote to
	// stdout. Only valid when the output path is "-".
	Output() ([]byte, error)
}
