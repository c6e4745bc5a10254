package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/ballsort/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorBlue)
	s.SetColored(5, 1, '●', core.ColorGreen)

	if got, want := ansi.Strip(RenderScreen(s)), s.String(); got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color should render unstyled, got %q", got)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"abcdef", 4, "abcdef"},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
