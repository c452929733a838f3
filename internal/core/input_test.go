package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionUp)
	f.SetClick(3, 4, true)
	if !f.Has(ActionUp) || f.Has(ActionDown) {
		t.Errorf("Has: got up=%v down=%v, expected true false", f.Has(ActionUp), f.Has(ActionDown))
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionUp) || f.Click != nil {
		t.Error("Clear should drop actions and clicks")
	}
	if !clone.Has(ActionUp) || clone.Click == nil || clone.Click.X != 3 {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionChoice(t *testing.T) {
	tests := []struct {
		a        Action
		expected int
		ok       bool
	}{
		{ActionChoice1, 0, true},
		{ActionChoice2, 1, true},
		{ActionChoice3, 2, true},
		{ActionConfirm, 0, false},
	}

	for _, tt := range tests {
		got, ok := tt.a.Choice()
		if got != tt.expected || ok != tt.ok {
			t.Errorf("%s.Choice() = (%d, %v), expected (%d, %v)", tt.a, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestTickInterval(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 50}).TickInterval(); got.Milliseconds() != 20 {
		t.Errorf("TickInterval at 50 = %v, expected 20ms", got)
	}
	if got := (RuntimeConfig{}).TickInterval(); got <= 0 {
		t.Errorf("TickInterval default = %v, expected positive", got)
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor("bright_red"); !ok || c != ColorBrightRed {
		t.Errorf("ParseColor(bright_red) = (%v, %v), expected (%v, true)", c, ok, ColorBrightRed)
	}
	if _, ok := ParseColor("plaid"); ok {
		t.Error("ParseColor should reject unknown names")
	}
}

func TestColorPalette(t *testing.T) {
	tests := []struct {
		color Color
		name  string
		ansi  string
	}{
		{ColorDefault, "default", ""},
		{ColorRed, "red", "1"},
		{ColorDarkGreen, "dark_green", "22"},
		{ColorBrown, "brown", "130"},
		{Color(200), "unknown", ""},
	}

	for _, tt := range tests {
		if got := tt.color.String(); got != tt.name {
			t.Errorf("Color(%d).String() = %q, expected %q", tt.color, got, tt.name)
		}
		if got := tt.color.ANSI(); got != tt.ansi {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tt.color, got, tt.ansi)
		}
	}

	for i := range NumColors {
		c := Color(i)
		if got, ok := ParseColor(c.String()); !ok || got != c {
			t.Errorf("ParseColor(%q) = (%d, %v), expected (%d, true)", c.String(), got, ok, c)
		}
	}
}
