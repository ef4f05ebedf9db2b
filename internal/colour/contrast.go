// Package colour provides WCAG contrast and perceptual distance metrics.
package colour

import "math"

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(rgb RGB) float64 {
	rf := gammaCorrect(float64(rgb.R) / 255.0)
	gf := gammaCorrect(float64(rgb.G) / 255.0)
	bf := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, where 21 is maximum contrast
// (black vs white). WCAG AA requires 4.5:1 for normal text, 3:1 for large text.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastRatioHex is ContrastRatio over hex colour strings.
func ContrastRatioHex(hex1, hex2 string) float64 {
	return ContrastRatio(HexToRGB(hex1), HexToRGB(hex2))
}

// HueDistance calculates the angular distance between two hues on the colour
// wheel. Returns a value between 0 and 180 degrees (shortest path around the
// wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(normaliseHue(h1) - normaliseHue(h2))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// DeltaE computes the Euclidean distance between two colours in OKLab.
// OKLab is perceptually uniform, so the plain Euclidean distance is a usable
// perceptual difference metric.
func DeltaE(c1, c2 Oklch) float64 {
	h1 := c1.H * (math.Pi / 180.0)
	h2 := c2.H * (math.Pi / 180.0)

	a1, b1 := c1.C*math.Cos(h1), c1.C*math.Sin(h1)
	a2, b2 := c2.C*math.Cos(h2), c2.C*math.Sin(h2)

	dL := c1.L - c2.L
	da := a1 - a2
	db := b1 - b2

	return math.Sqrt(dL*dL + da*da + db*db)
}
