package colour

import (
	"math"
	"testing"
)

func TestSliderMagnitude(t *testing.T) {
	tests := []struct {
		name       string
		saturation int
		brightness int
		contrast   int
		dark       bool
		wantL      float64
		wantC      float64
	}{
		{
			name: "centred sliders",
			wantL: 0.52, wantC: 0.14,
		},
		{
			name:       "saturation extremes map to chroma budget",
			saturation: 5,
			wantL:      0.52, wantC: 0.26,
		},
		{
			name:       "minimum saturation",
			saturation: -5,
			wantL:      0.52, wantC: 0.02,
		},
		{
			name:       "brightness swings lightness by 0.125",
			brightness: 5,
			wantL:      0.645, wantC: 0.14,
		},
		{
			name:     "contrast darkens in light mode",
			contrast: 5,
			wantL:    0.42, wantC: 0.14,
		},
		{
			name:     "contrast lightens in dark mode",
			contrast: 5, dark: true,
			wantL: 0.62, wantC: 0.14,
		},
		{
			name:       "out of range levels clamp at boundary",
			saturation: 99, brightness: -99,
			wantL: 0.395, wantC: 0.26,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, c := sliderMagnitude(tt.saturation, tt.contrast, tt.brightness, 1.0, tt.dark)
			if math.Abs(l-tt.wantL) > 1e-9 {
				t.Errorf("lightness = %.4f, want %.4f", l, tt.wantL)
			}
			if math.Abs(c-tt.wantC) > 1e-9 {
				t.Errorf("chroma = %.4f, want %.4f", c, tt.wantC)
			}
		})
	}
}

func TestSliderMagnitudeChromaVariance(t *testing.T) {
	_, base := sliderMagnitude(0, 0, 0, 1.0, false)
	_, scaled := sliderMagnitude(0, 0, 0, 1.1, false)
	if math.Abs(scaled-base*1.1) > 1e-9 {
		t.Errorf("chroma variance not applied: %.4f vs %.4f", scaled, base*1.1)
	}

	_, capped := sliderMagnitude(5, 0, 0, 2.0, false)
	if capped > brandChromaCap {
		t.Errorf("chroma %.4f exceeds cap %.4f", capped, brandChromaCap)
	}
}

func TestBuildBrandRoleRelationships(t *testing.T) {
	bg := Oklch{L: 0.97, C: 0.004, H: 240}
	r := NewRandFromString("relationships")

	// Hue 250 at mid lightness has plenty of chroma headroom, so the role
	// factors survive gamut clamping.
	hues := [5]float64{250, 250, 250, 140, 0}
	set := buildBrand(r, hues, bg, 0, 0, 0, 1.0, false)

	if set.Secondary.C >= set.Primary.C {
		t.Errorf("secondary chroma %.4f not below primary %.4f", set.Secondary.C, set.Primary.C)
	}
	if set.Secondary.L <= set.Primary.L {
		t.Errorf("secondary lightness %.4f not above primary %.4f", set.Secondary.L, set.Primary.L)
	}
	if set.Accent.C <= set.Primary.C {
		t.Errorf("accent chroma %.4f not above primary %.4f", set.Accent.C, set.Primary.C)
	}
	if set.Accent.L <= set.Primary.L {
		t.Errorf("accent lightness %.4f not above primary %.4f", set.Accent.L, set.Primary.L)
	}
}

func TestPickBrandHueKeepsTargetHue(t *testing.T) {
	// Candidate sampling explores chroma but all candidates sit on the
	// role's target hue; only that hue survives, with magnitude coming from
	// the sliders afterwards.
	bg := Oklch{L: 0.97, C: 0, H: 60}
	r := NewRandFromString("hue")
	got := pickBrandHue(r, 217, 0.52, bg, nil)
	if HueDistance(got, 217) > 1e-9 {
		t.Errorf("pickBrandHue = %.4f, want 217", got)
	}
}

func TestPickBrandHueDeterministic(t *testing.T) {
	bg := Oklch{L: 0.1, C: 0.01, H: 240}
	a := pickBrandHue(NewRandFromString("d"), 30, 0.5, bg, []Oklch{{L: 0.5, C: 0.1, H: 200}})
	b := pickBrandHue(NewRandFromString("d"), 30, 0.5, bg, []Oklch{{L: 0.5, C: 0.1, H: 200}})
	if a != b {
		t.Errorf("same seed picked different hues: %v vs %v", a, b)
	}
}

func TestStatusHues(t *testing.T) {
	tests := []struct {
		name     string
		hues     [5]float64
		wantGood float64
		wantBad  float64
	}{
		{
			name:     "already oriented",
			hues:     [5]float64{0, 0, 0, 140, 10},
			wantGood: 140, wantBad: 10,
		},
		{
			name:     "bad closer to green gets swapped",
			hues:     [5]float64{0, 0, 0, 350, 130},
			wantGood: 130, wantBad: 350,
		},
		{
			name:     "good closer to red gets swapped",
			hues:     [5]float64{0, 0, 0, 10, 300},
			wantGood: 300, wantBad: 10,
		},
		{
			name:     "monochrome equal hues stay put",
			hues:     [5]float64{217, 217, 217, 217, 217},
			wantGood: 217, wantBad: 217,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			good, bad := statusHues(tt.hues)
			if good != tt.wantGood || bad != tt.wantBad {
				t.Errorf("statusHues(%v) = (%v, %v), want (%v, %v)", tt.hues, good, bad, tt.wantGood, tt.wantBad)
			}
		})
	}
}

func TestStatusHueOrientationProperty(t *testing.T) {
	// For every non-monochrome mode and 100 seeded base hues, the resolved
	// good hue must be closer to green, or farther from red, than bad.
	r := NewRandFromString("status-orientation")
	for _, mode := range Modes() {
		if mode == ModeMonochrome {
			continue
		}
		for i := 0; i < 100; i++ {
			base := r.Next() * 360
			hues := harmonyHues(base, Harmony(mode))
			good, bad := statusHues(hues)

			closerToGreen := HueDistance(good, greenHue) <= HueDistance(bad, greenHue)
			fartherFromRed := HueDistance(good, redHue) >= HueDistance(bad, redHue)
			if !closerToGreen && !fartherFromRed {
				t.Fatalf("mode %s base %.1f: good=%.1f bad=%.1f misoriented", mode, base, good, bad)
			}
		}
	}
}

func TestBuildStatusWarnPinned(t *testing.T) {
	for _, mode := range Modes() {
		cfg := Harmony(mode)
		hues := harmonyHues(123, cfg)
		set := buildStatus(hues, 0, 0, 0, cfg.ChromaVariance, false)
		if HueDistance(set.Warn.H, warnHue) > 1e-9 {
			t.Errorf("mode %s: warn hue %.2f, want %.2f regardless of harmony", mode, set.Warn.H, warnHue)
		}
	}
}

func TestBuildStatusMonochromeSeparation(t *testing.T) {
	// Monochrome keeps good and bad on one hue; lightness and chroma biases
	// alone must keep them apart.
	hues := harmonyHues(217, Harmony(ModeMonochrome))
	set := buildStatus(hues, 0, 0, 0, Harmony(ModeMonochrome).ChromaVariance, false)
	if set.Good.Hex() == set.Bad.Hex() {
		t.Error("monochrome good and bad are identical")
	}
	if set.Good.L <= set.Bad.L {
		t.Errorf("good lightness %.4f not above bad %.4f", set.Good.L, set.Bad.L)
	}
}
