package icon

import (
	"strings"
	"testing"
)

func TestSanitizeExt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "txt", "txt"},
		{"uppercase", "TXT", "txt"},
		{"surrounding space", "  pdf  ", "pdf"},
		{"dot kept", "tar.gz", "tar.gz"},
		{"path separators dropped", "../../etc/passwd", "....etcpasswd"},
		{"empty", "", ""},
		{"only unsafe chars", "/\\<>|", ""},
		{"truncated to 20 before filtering", strings.Repeat("a", 30), strings.Repeat("a", 20)},
		{"unicode dropped", "文档doc", "doc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeExt(tt.input); got != tt.want {
				t.Errorf("sanitizeExt(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeExtTruncationCountsDroppedChars(t *testing.T) {
	// The 20-character budget is consumed by the raw input, not the
	// filtered output.
	input := strings.Repeat("/", 19) + "abc"
	if got := sanitizeExt(input); got != "a" {
		t.Errorf("got %q, want a", got)
	}
}

func TestDefaultProviderNeverFails(t *testing.T) {
	p := Default()
	if p == nil {
		t.Fatal("Default returned nil provider")
	}

	// Unsafe and empty inputs come back as empty strings, never a panic.
	for _, ext := range []string{"", "   ", "///", strings.Repeat("q", 100)} {
		_ = p.FileIcon(ext)
	}
}

func TestLookupEmptyExtension(t *testing.T) {
	if got := Lookup(""); got != "" {
		t.Errorf("Lookup(\"\"): got %q, want empty", got)
	}
}
