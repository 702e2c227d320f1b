package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "chapterbook.yaml")

	configContent := `audio:
  sample_rate: 48000
  channels: 2
  format: wav
fetch:
  timeout_seconds: 10
chapters:
  sort_on_save: true
verbose: true
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create temp config: %v", err)
	}

	cfg, err := LoadConfigFile(configPath)
	if err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}

	if cfg.Audio.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.Audio.SampleRate)
	}
	if cfg.Audio.Channels != 2 {
		t.Errorf("Expected channels 2, got %d", cfg.Audio.Channels)
	}
	if cfg.Audio.Format != "wav" {
		t.Errorf("Expected format 'wav', got %s", cfg.Audio.Format)
	}
	if cfg.Fetch.TimeoutSeconds != 10 {
		t.Errorf("Expected timeout 10, got %d", cfg.Fetch.TimeoutSeconds)
	}
	if !cfg.Chapters.SortOnSave {
		t.Error("Expected sort_on_save true")
	}
	if !cfg.Verbose {
		t.Error("Expected verbose true")
	}
}

func TestLoadConfigFile_PartialKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "chapterbook.yaml")

	// Only override the sample rate; everything else stays default
	configContent := `audio:
  sample_rate: 22050
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create temp config: %v", err)
	}

	cfg, err := LoadConfigFile(configPath)
	if err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}

	if cfg.Audio.SampleRate != 22050 {
		t.Errorf("Expected sample rate 22050, got %d", cfg.Audio.SampleRate)
	}
	if cfg.Audio.Format != "s16le" {
		t.Errorf("Expected default format 's16le', got %s", cfg.Audio.Format)
	}
	if cfg.Fetch.TimeoutSeconds != 30 {
		t.Errorf("Expected default timeout 30, got %d", cfg.Fetch.TimeoutSeconds)
	}
}

func TestLoadConfigFile_MissingFile(t *testing.T) {
	_, err := LoadConfigFile("/nonexistent/chapterbook.yaml")
	if err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadConfigFile_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "broken.yaml")

	if err := os.WriteFile(configPath, []byte("audio: [not: valid"), 0644); err != nil {
		t.Fatalf("Failed to create temp config: %v", err)
	}

	_, err := LoadConfigFile(configPath)
	if err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestSaveConfigFile_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "chapterbook.yaml")

	original := DefaultConfig()
	original.Audio.SampleRate = 48000
	original.Chapters.SortOnSave = true

	if err := SaveConfigFile(original, configPath); err != nil {
		t.Fatalf("SaveConfigFile failed: %v", err)
	}

	loaded, err := LoadConfigFile(configPath)
	if err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}

	if loaded.Audio.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", loaded.Audio.SampleRate)
	}
	if !loaded.Chapters.SortOnSave {
		t.Error("Expected sort_on_save true after round trip")
	}
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "chapterbook.yaml")

	configContent := `audio:
  channels: 2
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create temp config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Audio.Channels != 2 {
		t.Errorf("Expected channels 2 (from file), got %d", cfg.Audio.Channels)
	}
	if cfg.Audio.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.Audio.SampleRate)
	}
}

func TestLoadConfig_ExplicitPathMissing(t *testing.T) {
	_, err := LoadConfig("/nonexistent/chapterbook.yaml")
	if err == nil {
		t.Error("Expected error for missing explicit config path")
	}
}

func TestLoadConfig_InvalidValuesRejected(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "chapterbook.yaml")

	configContent := `audio:
  sample_rate: -1
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create temp config: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Error("Expected validation error for negative sample rate")
	}
}
