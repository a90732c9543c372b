package cmd

import (
	"testing"

	"github.com/imeis/lastfm/pkg/lastfm"
)

func TestPadToWidth(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected string
	}{
		{
			name:     "no padding when width is 0",
			text:     "hello",
			width:    0,
			expected: "hello",
		},
		{
			name:     "no padding when width is negative",
			text:     "hello",
			width:    -1,
			expected: "hello",
		},
		{
			name:     "pad short text",
			text:     "hi",
			width:    5,
			expected: "hi   ",
		},
		{
			name:     "exact width unchanged",
			text:     "hello",
			width:    5,
			expected: "hello",
		},
		{
			name:     "truncate long text with ellipsis",
			text:     "hello world",
			width:    8,
			expected: "hello...",
		},
		{
			name:     "width smaller than ellipsis",
			text:     "hello",
			width:    2,
			expected: "..",
		},
		{
			name:     "wide characters counted by display width",
			text:     "日本語",
			width:    8,
			expected: "日本語  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padToWidth(tt.text, tt.width)
			if got != tt.expected {
				t.Errorf("padToWidth(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.expected)
			}
		})
	}
}

func TestFormatNowPlaying(t *testing.T) {
	now := &lastfm.NowPlaying{
		Name:  "Paranoid Android",
		Plays: 42,
		Artist: lastfm.ArtistSummary{
			Name: "Radiohead",
		},
	}

	out, err := formatNowPlaying(now, "{{.Artist.Name}} - {{.Name}} ({{.Plays}})")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Radiohead - Paranoid Android (42)" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestFormatNowPlayingBadTemplate(t *testing.T) {
	if _, err := formatNowPlaying(&lastfm.NowPlaying{}, "{{.Name"); err == nil {
		t.Error("expected error for invalid template")
	}
}
