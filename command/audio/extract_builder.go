// Package audio builds FFmpeg commands that pull the audio track out of
// a media file, either into a WAV file or as raw PCM on stdout for
// in-process analysis.
package audio

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"chapterbook/ffmpeg"
	"chapterbook/models"
)

// StdoutPath is the output path that sends extracted audio to stdout.
const StdoutPath = "-"

// ExtractBuilder implements ExtractCommand for building FFmpeg audio
// extraction commands.
type ExtractBuilder struct {
	sourcePath       string
	outputPath       string
	start            models.TimeCode
	end              models.TimeCode
	hasStart         bool
	hasEnd           bool
	channels         int
	sampleRate       int
	format           string
	totalDuration    float64
	progressCallback models.ProgressCallback
}

// NewExtractBuilder creates a new ExtractBuilder for the given source
// and output path. Pass StdoutPath as the output to stream raw bytes to
// stdout instead of a file.
func NewExtractBuilder(sourcePath, outputPath string) *ExtractBuilder {
	return &ExtractBuilder{
		sourcePath: sourcePath,
		outputPath: outputPath,
		channels:   1,       // Default to mono
		sampleRate: 44100,   // Default sample rate
		format:     "s16le", // Default to raw 16-bit PCM
	}
}

// SetStart limits extraction to begin at the given time code.
func (e *ExtractBuilder) SetStart(start models.TimeCode) ExtractCommand {
	e.start = start
	e.hasStart = true
	return e
}

// SetEnd limits extraction to stop at the given time code.
func (e *ExtractBuilder) SetEnd(end models.TimeCode) ExtractCommand {
	e.end = end
	e.hasEnd = true
	return e
}

// SetChannels sets the number of audio channels (e.g., 1 for mono, 2 for stereo).
func (e *ExtractBuilder) SetChannels(channels int) ExtractCommand {
	e.channels = channels
	return e
}

// SetSampleRate sets the audio sample rate in Hz (e.g., 48000, 44100).
func (e *ExtractBuilder) SetSampleRate(rate int) ExtractCommand {
	e.sampleRate = rate
	return e
}

// SetFormat sets the output container format (e.g., "s16le", "wav").
func (e *ExtractBuilder) SetFormat(format string) ExtractCommand {
	if format != "" {
		e.format = format
	}
	return e
}

// SetTotalDuration provides the source duration in seconds so progress
// callbacks can report a percentage.
func (e *ExtractBuilder) SetTotalDuration(seconds float64) ExtractCommand {
	e.totalDuration = seconds
	return e
}

// SetProgressCallback sets the callback function for progress updates.
func (e *ExtractBuilder) SetProgressCallback(callback models.ProgressCallback) ExtractCommand {
	e.progressCallback = callback
	return e
}

// BuildArgs constructs the FFmpeg command arguments.
func (e *ExtractBuilder) BuildArgs() []string {
	// Guard against missing source
	if e.sourcePath == "" {
		return []string{}
	}

	args := []string{"-i", e.sourcePath}

	// Add time window if specified
	if e.hasStart {
		args = append(args, "-ss", e.start.String())
	}
	if e.hasEnd {
		args = append(args, "-to", e.end.String())
	}

	args = append(args, "-vn") // No video

	// Add channels if specified
	if e.channels > 0 {
		args = append(args, "-ac", fmt.Sprintf("%d", e.channels))
	}

	// Add sample rate if specified
	if e.sampleRate > 0 {
		args = append(args, "-ar", fmt.Sprintf("%d", e.sampleRate))
	}

	args = append(args, "-f", e.format, "-y", e.outputPath)
	return args
}

// Run executes the FFmpeg command, writing the extracted audio to the
// output file.
func (e *ExtractBuilder) Run() error {
	// Guard against missing source
	if e.sourcePath == "" {
		return fmt.Errorf("cannot run command: source path is empty")
	}

	// Stdout output would interleave audio bytes with captured output
	if e.outputPath == StdoutPath {
		return fmt.Errorf("cannot run stdout extraction with Run, use Output")
	}

	args := e.BuildArgs()
	cmd := exec.Command("ffmpeg", args...)

	// If no progress callback, use simple execution
	if e.progressCallback == nil {
		output, err := cmd.CombinedOutput()
		if err != nil {
			return fmt.Errorf("ffmpeg command failed: %w (output: %s)", err, string(output))
		}
		return nil
	}

	// Execute with progress tracking
	return e.runWithProgress(cmd)
}

// Output executes the FFmpeg command and returns the bytes written to
// stdout. The output path must be StdoutPath.
func (e *ExtractBuilder) Output() ([]byte, error) {
	if e.sourcePath == "" {
		return nil, fmt.Errorf("cannot run command: source path is empty")
	}
	if e.outputPath != StdoutPath {
		return nil, fmt.Errorf("output path must be %q for stdout extraction, got %q", StdoutPath, e.outputPath)
	}

	args := e.BuildArgs()
	cmd := exec.Command("ffmpeg", args...)

	var stderr strings.Builder
	cmd.Stderr = &stderr

	data, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg command failed: %w (stderr: %s)", err, stderr.String())
	}
	return data, nil
}

// runWithProgress executes ffmpeg and streams progress updates via callback
func (e *ExtractBuilder) runWithProgress(cmd *exec.Cmd) error {
	// Get stderr pipe for progress parsing
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to get stderr pipe: %w", err)
	}

	// Get stdout for capturing any output
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to get stdout pipe: %w", err)
	}

	// Start the command
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	// Create progress tracker
	progress := models.NewExtractionProgress(e.totalDuration)
	progress.State = models.ProgressStateStarting
	e.progressCallback(progress)

	// Parse progress in a goroutine
	parser := ffmpeg.NewProgressParser()
	errChan := make(chan error, 1)

	go func() {
		errChan <- parser.StreamProgress(stderr, progress, e.progressCallback)
	}()

	// Capture stdout (usually empty for ffmpeg, but might have warnings)
	stdoutData, _ := io.ReadAll(stdout)

	// Wait for command to complete
	cmdErr := cmd.Wait()

	// Wait for progress parsing to complete
	parseErr := <-errChan

	// Update final state
	if cmdErr != nil {
		progress.State = models.ProgressStateFailed
		e.progressCallback(progress)
		return fmt.Errorf("ffmpeg command failed: %w (output: %s)", cmdErr, string(stdoutData))
	}

	if parseErr != nil {
		// Progress parsing failed, but command succeeded
		// This is not critical, just log it
		fmt.Printf("Warning: progress parsing error: %v\n", parseErr)
	}

	progress.State = models.ProgressStateCompleted
	progress.Progress = 100
	e.progressCallback(progress)

	return nil
}

// DryRun returns the FFmpeg command without executing it.
func (e *ExtractBuilder) DryRun() (string, error) {
	// Guard against missing source
	if e.sourcePath == "" {
		return "", fmt.Errorf("cannot build command: source path is empty")
	}

	args := e.BuildArgs()
	return fmt.Sprintf("ffmpeg %s", strings.Join(args, " ")), nil
}

// GetInputPath returns the input file path.
func (e *ExtractBuilder) GetInputPath() string {
	return e.sourcePath
}

// GetOutputPath returns the output file path.
func (e *ExtractBuilder) GetOutputPath() string {
	return e.outputPath
}
