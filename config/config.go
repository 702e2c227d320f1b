package config

// Config holds all chapterbook configuration options
type Config struct {
	// Audio extraction settings
	Audio AudioConfig `yaml:"audio"`

	// Web fetch settings
	Fetch FetchConfig `yaml:"fetch"`

	// Chapter table settings
	Chapters ChaptersConfig `yaml:"chapters"`

	// Behavioral flags
	Verbose bool `yaml:"verbose"` // Show detailed logs
}

// AudioConfig holds audio extraction settings
type AudioConfig struct {
	SampleRate int    `yaml:"sample_rate"` // e.g., 48000, 44100
	Channels   int    `yaml:"channels"`    // 1 (mono), 2 (stereo)
	Format     string `yaml:"format"`      // "s16le" (raw PCM) or "wav"
}

// FetchConfig holds settings for fetching chapter lists from the web
type FetchConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds"` // HTTP request timeout
	UserAgent      string `yaml:"user_agent"`      // User-Agent header, empty = Go default
}

// ChaptersConfig holds chapter table behavior settings
type ChaptersConfig struct {
	SortOnSave   bool   `yaml:"sort_on_save"`  // Sort rows by time before writing
	DefaultTitle string `yaml:"default_title"` // Title used for untitled rows
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		// Audio defaults match what the analyzer pipeline expects
		Audio: AudioConfig{
			SampleRate: 44100,
			Channels:   1, // Mono
			Format:     "s16le",
		},

		// Fetch defaults
		Fetch: FetchConfig{
			TimeoutSeconds: 30,
			UserAgent:      "",
		},

		// Chapter table defaults
		Chapters: ChaptersConfig{
			SortOnSave:   false, // Preserve row order as entered
			DefaultTitle: "Chapter",
		},

		// Behavioral defaults
		Verbose: false, // Quiet mode
	}
}

// Copy creates a deep copy of the config
func (c *Config) Copy() *Config {
	copy := *c
	copy.Audio = c.Audio
	copy.Fetch = c.Fetch
	copy.Chapters = c.Chapters
	return &copy
}

// FormatValues returns valid audio format values
func FormatValues() []string {
	return []string{"s16le", "wav"}
}

// IsValidFormat checks if an audio format is valid
func IsValidFormat(format string) bool {
	for _, valid := range FormatValues() {
		if format == valid {
			return true
		}
	}
	return false
}
