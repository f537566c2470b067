package tui

import (
	"testing"

	"github.com/vovakirdan/space-attackers/internal/core"
)

func TestRowRuns(t *testing.T) {
	s := core.NewScreen(10, 1)
	s.DrawColoredText(2, 0, "ab", core.ColorRed)
	s.DrawColoredText(4, 0, "c", core.ColorRed)
	s.SetBG(4, 0, core.ColorBlue)

	runs := rowRuns(s, 0)
	want := []run{
		{text: "  "},
		{fg: core.ColorRed, text: "ab"},
		{fg: core.ColorRed, bg: core.ColorBlue, text: "c"},
		{text: "     "},
	}
	if len(runs) != len(want) {
		t.Fatalf("runs = %d, expected %d: %v", len(runs), len(want), runs)
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("run %d = %+v, expected %+v", i, runs[i], want[i])
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "plain")
	s.DrawColoredText(1, 1, "orange", core.ColorOrange)
	s.SetBG(0, 2, core.RGB(10, 20, 30))

	// Tests run without a terminal, so no escape codes are written.
	if got := RenderScreen(s); got != s.String() {
		t.Errorf("RenderScreen() = %q, expected %q", got, s.String())
	}
}

func TestStyleForDefaultColors(t *testing.T) {
	style := styleFor(core.ColorDefault, core.ColorDefault)
	if got := style.Render("x"); got != "x" {
		t.Errorf("Render() = %q, expected %q", got, "x")
	}
}
