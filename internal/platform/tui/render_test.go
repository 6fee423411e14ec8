package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/dodge/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(4, 2)
	s.Set(0, 0, BlockChar, core.ColorGreen)
	s.Set(1, 0, BlockChar, core.ColorGreen)
	s.Set(2, 1, BlockChar, core.ColorRed)

	got := RenderScreen(s)
	want := "██  \n  █ "
	if got != want {
		t.Errorf("RenderScreen() = %q, expected %q", got, want)
	}
}

func TestRenderScreenColored(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(3, 1)
	s.Set(0, 0, BlockChar, core.ColorRed)

	got := RenderScreen(s)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("colored cell should produce an escape sequence, got %q", got)
	}
	if !strings.HasSuffix(got, "  ") {
		t.Errorf("uncolored run should be written plain, got %q", got)
	}
}
