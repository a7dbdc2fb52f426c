package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: string(code)}
}

func TestMultiChoice_NumberKeyPicks(t *testing.T) {
	mc := NewMultiChoice("Is Oats safe for Diabetes?", []string{"Safe", "Moderate", "Avoid"})
	mc, _ = mc.Update(press('3'))

	got, ok := mc.Chosen()
	if !ok || got != "Avoid" {
		t.Errorf("Chosen() = %q, %v; want Avoid, true", got, ok)
	}
}

func TestMultiChoice_OutOfRangeNumberIgnored(t *testing.T) {
	mc := NewMultiChoice("q", []string{"Safe", "Moderate", "Avoid"})
	mc, _ = mc.Update(press('4'))
	if mc.Submitted {
		t.Error("expected key 4 to be ignored with three options")
	}
}

func TestMultiChoice_ArrowsThenEnter(t *testing.T) {
	mc := NewMultiChoice("q", []string{"Safe", "Moderate", "Avoid"})
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if mc.Selected != 2 {
		t.Fatalf("Selected = %d, want 2 (clamped)", mc.Selected)
	}
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got, _ := mc.Chosen(); got != "Avoid" {
		t.Errorf("Chosen() = %q, want Avoid", got)
	}

	// Locked after submission.
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if mc.Selected != 2 {
		t.Errorf("Selected moved after submission: %d", mc.Selected)
	}
}

func TestMultiChoice_Reveal(t *testing.T) {
	mc := NewMultiChoice("q", []string{"Safe", "Moderate", "Avoid"}).Reveal(0, 2)
	if mc.IsCorrect() {
		t.Error("expected incorrect answer")
	}
	view := mc.View()
	if !strings.Contains(view, "✓") || !strings.Contains(view, "✗") {
		t.Errorf("expected both marks in view:\n%s", view)
	}

	mc = mc.Reveal(1, 1)
	if !mc.IsCorrect() {
		t.Error("expected correct answer")
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b"},
		{Label: "c", Disabled: true},
		{Label: "d"},
	})
	if m.Selected != 1 {
		t.Fatalf("initial Selected = %d, want 1", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("Selected = %d, want 3", m.Selected)
	}
}

func TestButton_Press(t *testing.T) {
	pressed := false
	b := NewButton("Launch Into FoodVerse", true, func() tea.Cmd {
		pressed = true
		return nil
	})
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !pressed {
		t.Error("expected enter to press the button")
	}
	if !strings.Contains(b.View(60), "Launch Into FoodVerse") {
		t.Error("expected label in view")
	}
}

func TestContentWidth(t *testing.T) {
	tests := []struct{ in, want int }{
		{10, 20},
		{50, 44},
		{200, 64},
	}
	for _, tt := range tests {
		if got := ContentWidth(tt.in); got != tt.want {
			t.Errorf("ContentWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestStarAt_Stable(t *testing.T) {
	stars := 0
	for row := 0; row < 40; row++ {
		for col := 0; col < 100; col++ {
			a := StarAt(row, col, 0)
			if a != StarAt(row, col, 0) {
				t.Fatalf("star at %d,%d not stable", row, col)
			}
			if a != "" {
				stars++
				if StarAt(row, col, 3) == "" {
					t.Fatalf("star at %d,%d vanished while twinkling", row, col)
				}
			} else if StarAt(row, col, 3) != "" {
				t.Fatalf("empty cell %d,%d gained a star", row, col)
			}
		}
	}
	if stars == 0 || stars > 4000/5 {
		t.Errorf("unexpected star count %d", stars)
	}
}

func TestMeter_Fraction(t *testing.T) {
	tests := []struct {
		count, total int
		want         float64
	}{
		{2, 8, 0.25},
		{0, 0, 0},
		{9, 8, 1},
		{-1, 8, 0},
	}
	for _, tt := range tests {
		m := Meter{Count: tt.count, Total: tt.total}
		if got := m.Fraction(); got != tt.want {
			t.Errorf("Fraction(%d/%d) = %v, want %v", tt.count, tt.total, got, tt.want)
		}
	}
}

func TestMeter_View(t *testing.T) {
	out := Meter{Count: 1, Total: 4, Width: 20}.View()
	if got := strings.Count(out, "█"); got != 5 {
		t.Errorf("expected 5 filled cells, got %d", got)
	}
	if got := strings.Count(out, "░"); got != 15 {
		t.Errorf("expected 15 empty cells, got %d", got)
	}

	out = Meter{Label: "Safe", Count: 4, Total: 8, Width: 20, ShowCount: true}.View()
	if !strings.Contains(out, "Safe") || !strings.Contains(out, " 4") {
		t.Errorf("expected label and count, got %q", out)
	}
	if got := strings.Count(out, "█"); got != 6 {
		t.Errorf("expected half of the 12-cell bar filled, got %d", got)
	}
}
