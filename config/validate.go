package config

import (
	"fmt"
	"strings"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errors []string

	// Validate audio config
	if err := c.Audio.Validate(); err != nil {
		errors = append(errors, fmt.Sprintf("audio config: %v", err))
	}

	// Validate fetch config
	if err := c.Fetch.Validate(); err != nil {
		errors = append(errors, fmt.Sprintf("fetch config: %v", err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// Validate checks if audio configuration is valid
func (ac *AudioConfig) Validate() error {
	var errors []string

	if ac.SampleRate <= 0 {
		errors = append(errors, "sample rate must be positive")
	}

	if ac.Channels <= 0 {
		errors = append(errors, "channels must be positive")
	} else if ac.Channels > 8 {
		errors = append(errors, "channels cannot exceed 8")
	}

	if !IsValidFormat(ac.Format) {
		errors = append(errors, fmt.Sprintf("invalid format '%s', must be one of: %s",
			ac.Format, strings.Join(FormatValues(), ", ")))
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, ", "))
	}

	return nil
}

// Validate checks if fetch configuration is valid
func (fc *FetchConfig) Validate() error {
	var errors []string

	if fc.TimeoutSeconds <= 0 {
		errors = append(errors, "timeout must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, ", "))
	}

	return nil
}
