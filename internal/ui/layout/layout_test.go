package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestFrame_HeaderAndFooter(t *testing.T) {
	f := Frame{
		Title: "Diabetes",
		Badge: "8 foods to explore",
		Hints: []KeyHint{{Key: "Enter", Description: "Select"}, {Key: "Esc", Description: "Back"}},
	}
	out := f.Render(100, 30, func(int, int) string { return "body" })
	for _, want := range []string{"FoodVerse", "Diabetes", "8 foods to explore", "Enter", "Select", "Esc", "Back", "body"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q:\n%s", want, out)
		}
	}
}

func TestFrame_BodyGetsRemainingSpace(t *testing.T) {
	var gotW, gotH int
	out := Frame{Title: "x"}.Render(80, 30, func(w, h int) string {
		gotW, gotH = w, h
		return ""
	})
	if gotW != 80 {
		t.Errorf("body width = %d, want 80", gotW)
	}
	// Header and footer are one line each inside a border.
	if gotH != 30-3-3 {
		t.Errorf("body height = %d, want 24", gotH)
	}
	if h := lipgloss.Height(out); h != 30 {
		t.Errorf("frame height = %d, want 30", h)
	}
}

func TestFrame_TallBodyIsClipped(t *testing.T) {
	out := Frame{}.Render(60, 20, func(int, int) string {
		return strings.Repeat("line\n", 50)
	})
	if h := lipgloss.Height(out); h != 20 {
		t.Errorf("frame height = %d, want 20", h)
	}
}

func TestRenderMinSizeMessage(t *testing.T) {
	msg := RenderMinSizeMessage(30, 10)
	if !strings.Contains(msg, "Terminal too small") || !strings.Contains(msg, "Current: 30 x 10") {
		t.Errorf("unexpected message:\n%s", msg)
	}
}
