package render

import (
	"strings"
	"testing"

	"github.com/tdewolff/canvas"

	"github.com/kando-74/cartas/fonts"
)

func testFace(t *testing.T) *canvas.FontFace {
	t.Helper()
	face, err := fonts.Face(fonts.Fallback, 400, 16, canvas.Black)
	if err != nil {
		t.Fatalf("fonts.Face: %v", err)
	}
	return face
}

func TestWrapRespectsLimit(t *testing.T) {
	face := testFace(t)
	content := "the quick brown fox jumps over the lazy dog and keeps on running"
	limit := face.TextWidth("the quick brown") * 1.05

	lines := Wrap(content, limit, face)
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines, got %d", len(lines))
	}
	for i, line := range lines {
		if strings.Contains(line.Text, " ") && line.Width > limit {
			t.Fatalf("line %d %q overflows: %g > %g", i, line.Text, line.Width, limit)
		}
	}
	joined := strings.Join(collectText(lines), " ")
	if joined != content {
		t.Fatalf("wrapping lost words: %q", joined)
	}
}

func TestWrapKeepsExplicitBreaks(t *testing.T) {
	face := testFace(t)
	lines := Wrap("first\n\nsecond", 10_000, face)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0].Text != "first" || lines[1].Text != "" || lines[2].Text != "second" {
		t.Fatalf("lines = %q, %q, %q", lines[0].Text, lines[1].Text, lines[2].Text)
	}
}

func TestWrapNormalizesCRLF(t *testing.T) {
	face := testFace(t)
	lines := Wrap("a\r\nb", 10_000, face)
	if len(lines) != 2 || lines[0].Text != "a" || lines[1].Text != "b" {
		t.Fatalf("unexpected lines %+v", lines)
	}
}

func TestWrapNeverSplitsWords(t *testing.T) {
	face := testFace(t)
	// The limit is smaller than any single word, so every word gets its own
	// line and may overflow.
	lines := Wrap("indivisible words survive", 1, face)
	want := []string{"indivisible", "words", "survive"}
	got := collectText(lines)
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
	for _, line := range lines {
		if line.Width <= 1 {
			t.Fatalf("overflowing word %q reported width %g", line.Text, line.Width)
		}
	}
}

func collectText(lines []Line) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line.Text
	}
	return out
}
