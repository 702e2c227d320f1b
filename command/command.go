// Package command provides the core Command interface for building and
// executing FFmpeg commands.
//
// Specialized builders (currently the audio extraction builder)
// implement the Command interface, so callers can preview, log, and run
// them uniformly.
package command

// Command represents an FFmpeg command that can be built, executed, or previewed.
//
// The interface supports:
//   - Command building: Generate FFmpeg argument arrays
//   - Execution: Run the command and handle output
//   - Preview: Display the command without executing (dry run)
//   - Metadata: Input and output path information
//
// Example usage:
//
//	cmd := audio.NewExtractBuilder("input.mp4", "output.wav").
//		SetChannels(1).
//		SetSampleRate(44100)
//
//	// Preview the command
//	cmd.DryRun()
//
//	// Execute the command
//	cmd.Run()
type Command interface {
	// BuildArgs constructs and returns the FFmpeg command arguments as a slice.
	// The returned slice is suitable for exec.Command("ffmpeg", args...).
	//
	// Example return value:
	//   ["-i", "input.mp4", "-vn", "-ac", "1", "-ar", "44100", "-f", "wav", "-y", "output.wav"]
	BuildArgs() []string

	// Run executes the FFmpeg command using exec.Command.
	// It captures and logs output/errors, handling both success and failure cases.
	// The method blocks until the command completes.
	//
	// Returns an error if the command fails to execute or returns a non-zero exit code.
	Run() error

	// DryRun returns the FFmpeg command as a string without executing it.
	// Useful for debugging, logging, or generating scripts.
	//
	// Returns the command string in format "ffmpeg <args...>" and an error if
	// the command cannot be built (e.g., invalid parameters).
	DryRun() (string, error)

	// GetInputPath returns the primary input file path for this command.
	// Used for validation and logging.
	GetInputPath() string

	// GetOutputPath returns the output file path for this command.
	// Used for result tracking and file management.
	GetOutputPath() string
}
