package textenc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
		wantErr  bool
	}{
		{
			name:     "Plain UTF-8",
			data:     []byte("0:00 Intro\n1:30 Verse\n"),
			expected: "0:00 Intro\n1:30 Verse\n",
		},
		{
			name:     "UTF-8 with BOM stripped",
			data:     append([]byte{0xEF, 0xBB, 0xBF}, []byte("0:00 Intro")...),
			expected: "0:00 Intro",
		},
		{
			name:     "UTF-8 multibyte",
			data:     []byte("0:00 イントロ"),
			expected: "0:00 イントロ",
		},
		{
			name:     "UTF-16 little endian with BOM",
			data:     []byte{0xFF, 0xFE, 'H', 0x00, 'i', 0x00},
			expected: "Hi",
		},
		{
			name:     "UTF-16 big endian with BOM",
			data:     []byte{0xFE, 0xFF, 0x00, 'H', 0x00, 'i'},
			expected: "Hi",
		},
		{
			name: "Shift-JIS fallback",
			// "テスト" in Shift-JIS
			data:     []byte{0x83, 0x65, 0x83, 0x58, 0x83, 0x67},
			expected: "テスト",
		},
		{
			name:     "Empty input",
			data:     []byte{},
			expected: "",
		},
		{
			name:    "Undecodable bytes",
			data:    []byte{0xFF, 0xFF, 0xFF},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Decode(tt.data)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got %q", result)
				}
				if !errors.Is(err, ErrUndecodable) {
					t.Errorf("Expected ErrUndecodable, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if result != tt.expected {
				t.Errorf("Decode() = %q; want %q", result, tt.expected)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chapters.txt")

	content := "0:00:00.000 Intro\n0:01:30.000 Verse\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	result, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if result != content {
		t.Errorf("ReadFile() = %q; want %q", result, content)
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Error("Expected error for missing file")
	}
}
