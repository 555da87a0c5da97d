package internal

import (
	"encoding/base64"
	"reflect"
	"strings"
	"testing"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{
			name:  "empty text",
			text:  "",
			limit: 10,
			want:  nil,
		},
		{
			name:  "single short word",
			text:  "hello",
			limit: 10,
			want:  []string{"hello"},
		},
		{
			name:  "wraps at the limit",
			text:  "one two three four",
			limit: 9,
			want:  []string{"one two", "three", "four"},
		},
		{
			name:  "word longer than limit gets its own line",
			text:  "a extraordinarily b",
			limit: 5,
			want:  []string{"a", "extraordinarily", "b"},
		},
		{
			name:  "everything fits on one line",
			text:  "short enough",
			limit: 56,
			want:  []string{"short enough"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.text, tt.limit)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WrapText() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlaceholderImage(t *testing.T) {
	url := PlaceholderImage("History", "A striking illustration of the history of computing")

	if !strings.HasPrefix(url, "data:image/svg+xml;base64,") {
		t.Fatalf("PlaceholderImage() = %q, want an SVG data URI", url[:40])
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/svg+xml;base64,"))
	if err != nil {
		t.Fatalf("placeholder payload is not valid base64: %v", err)
	}
	svg := string(raw)

	for _, want := range []string{
		"<svg",
		"Image could not be generated",
		"History",
		"A striking illustration of the history of",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("placeholder SVG missing %q", want)
		}
	}

	// Same inputs produce the same placeholder
	if again := PlaceholderImage("History", "A striking illustration of the history of computing"); again != url {
		t.Error("PlaceholderImage() is not deterministic for identical inputs")
	}
}

func TestPlaceholderImageEscapesMarkup(t *testing.T) {
	url := PlaceholderImage(`<Title> & "Quotes"`, "prompt with <tags>")
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/svg+xml;base64,"))
	if err != nil {
		t.Fatalf("placeholder payload is not valid base64: %v", err)
	}
	svg := string(raw)

	if strings.Contains(svg, "<Title>") || strings.Contains(svg, "<tags>") {
		t.Error("placeholder SVG contains unescaped markup from inputs")
	}
	if !strings.Contains(svg, "&lt;Title&gt; &amp; &quot;Quotes&quot;") {
		t.Error("placeholder SVG missing escaped title text")
	}
}

func TestPlaceholderImageTruncatesLongPrompts(t *testing.T) {
	long := strings.Repeat("word ", 120)
	url := PlaceholderImage("Section", long)
	raw, _ := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/svg+xml;base64,"))

	if !strings.Contains(string(raw), "…") {
		t.Error("placeholder SVG for a long prompt is missing the truncation marker")
	}
}

func TestIsPlaceholderURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{name: "placeholder", url: PlaceholderImage("T", "p"), want: true},
		{name: "generated image", url: "data:image/jpeg;base64,dGVzdA==", want: false},
		{name: "empty", url: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPlaceholderURL(tt.url); got != tt.want {
				t.Errorf("IsPlaceholderURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}
