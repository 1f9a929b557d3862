package handler

import (
	"strings"
	"testing"
)

func TestNormalizeVideoURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"https://www.youtube.com/watch?v=abc123", "https://www.youtube.com/embed/abc123", true},
		{"https://youtu.be/abc123", "https://www.youtube.com/embed/abc123", true},
		{"https://www.youtube.com/embed/abc123", "https://www.youtube.com/embed/abc123", true},
		{"https://vimeo.com/987654", "https://player.vimeo.com/video/987654", true},
		{"https://player.vimeo.com/video/987654", "https://player.vimeo.com/video/987654", true},
		{"http://www.youtube.com/watch?v=abc123", "", false},
		{"https://example.com/video.mp4", "", false},
		{"", "", false},
		{"javascript:alert(1)", "", false},
	}

	for _, tc := range cases {
		got, ok := normalizeVideoURL(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("normalizeVideoURL(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestHeroVideoEmbedSanitized(t *testing.T) {
	markup := string(heroVideoEmbed("https://www.youtube.com/watch?v=abc123"))
	if !strings.Contains(markup, `src="https://www.youtube.com/embed/abc123"`) {
		t.Fatalf("expected embed iframe, got %q", markup)
	}
	if !strings.Contains(markup, "<iframe") {
		t.Fatalf("expected iframe to survive sanitization, got %q", markup)
	}

	if embed := heroVideoEmbed("https://evil.example.com/embed/x"); embed != "" {
		t.Fatalf("expected empty embed for untrusted host, got %q", embed)
	}
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	out := string(renderMarkdown("# Hello\n<script>alert(1)</script>\n**bold**"))
	if strings.Contains(out, "<script>") {
		t.Fatalf("expected scripts stripped, got %q", out)
	}
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "<strong>") {
		t.Fatalf("expected markdown rendering, got %q", out)
	}
}
