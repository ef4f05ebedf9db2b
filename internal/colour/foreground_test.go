package colour

import "testing"

func TestSelectForegroundHex(t *testing.T) {
	backgrounds := []struct {
		name string
		hex  string
	}{
		{name: "white", hex: "#ffffff"},
		{name: "black", hex: "#000000"},
		{name: "mid grey", hex: "#808080"},
		{name: "awkward mid grey", hex: "#777777"},
		{name: "blue", hex: "#3b82f6"},
		{name: "red", hex: "#ef4444"},
		{name: "yellow", hex: "#eab308"},
		{name: "dark surface", hex: "#16181d"},
		{name: "light surface", hex: "#f5f4f1"},
	}

	for _, bg := range backgrounds {
		t.Run(bg.name, func(t *testing.T) {
			fg := SelectForegroundHex(bg.hex, MinTextContrast)
			if got := ContrastRatioHex(fg, bg.hex); got < MinTextContrast {
				t.Errorf("contrast(%s, %s) = %.2f, want >= %.1f", fg, bg.hex, got, MinTextContrast)
			}
		})
	}
}

func TestSelectForegroundHexPolarity(t *testing.T) {
	t.Run("light background gets dark text", func(t *testing.T) {
		fg := ToOklch(SelectForegroundHex("#f5f4f1", MinTextContrast))
		if fg.L > 0.5 {
			t.Errorf("foreground lightness %.3f, want dark", fg.L)
		}
	})

	t.Run("dark background gets light text", func(t *testing.T) {
		fg := ToOklch(SelectForegroundHex("#16181d", MinTextContrast))
		if fg.L < 0.5 {
			t.Errorf("foreground lightness %.3f, want light", fg.L)
		}
	})
}

func TestSelectForegroundHexDeterministic(t *testing.T) {
	a := SelectForegroundHex("#3b82f6", MinTextContrast)
	b := SelectForegroundHex("#3b82f6", MinTextContrast)
	if a != b {
		t.Errorf("selection not deterministic: %s vs %s", a, b)
	}
}

func TestEnsureContrastAlreadyCompliant(t *testing.T) {
	in := Oklch{L: 0.95, C: 0.01, H: 250}
	got := ensureContrast(in, HexToRGB("#111111"), MinTextContrast, true)
	if got != ClampToSRGBGamut(in) {
		t.Errorf("compliant colour was altered: %+v -> %+v", in, got)
	}
}
