// Package colour provides OKLCH colour-space conversion and gamut mapping.
package colour

import "math"

// Oklch represents a colour in the OKLCH cylindrical space: L is perceptual
// lightness in [0,1], C is chroma (>= 0, rarely above 0.4 for sRGB colours),
// H is hue in degrees [0,360). It is an immutable value type; every
// transformation produces a new value.
type Oklch struct {
	L float64
	C float64
	H float64
}

// achromaticChroma is the chroma below which a colour's hue is numerically
// meaningless. Hue for such colours falls back to a caller-supplied value so
// neutral tokens keep a stable hue instead of jittering.
const achromaticChroma = 1e-4

// ToOklch converts a hex colour to OKLCH. Colours with no measurable chroma
// report hue 0; use ToOklchWithHueFallback when a stable hue is needed.
func ToOklch(hex string) Oklch {
	return ToOklchWithHueFallback(hex, 0)
}

// ToOklchWithHueFallback converts a hex colour to OKLCH. When the colour is
// achromatic (a and b both near zero) the hue is undefined and fallbackHue is
// used in its place.
func ToOklchWithHueFallback(hex string, fallbackHue float64) Oklch {
	rgb := HexToRGB(hex)

	lr := srgbToLinear(float64(rgb.R) / 255.0)
	lg := srgbToLinear(float64(rgb.G) / 255.0)
	lb := srgbToLinear(float64(rgb.B) / 255.0)

	l, a, b := linearToOklab(lr, lg, lb)

	c := math.Hypot(a, b)
	if c < achromaticChroma {
		return Oklch{L: clamp01(l), C: 0, H: normaliseHue(fallbackHue)}
	}

	h := math.Atan2(b, a) * (180.0 / math.Pi)
	return Oklch{L: clamp01(l), C: c, H: normaliseHue(h)}
}

// RGB converts the colour to 8-bit sRGB, clamping each channel into range.
// Out-of-gamut colours are clipped per channel; use ClampToSRGBGamut first
// when lightness and hue must be preserved exactly.
func (c Oklch) RGB() RGB {
	r, g, b := c.linearRGB()
	return RGB{
		R: uint8(math.Round(linearToSRGB(clamp01(r)) * 255)),
		G: uint8(math.Round(linearToSRGB(clamp01(g)) * 255)),
		B: uint8(math.Round(linearToSRGB(clamp01(b)) * 255)),
	}
}

// Hex returns the colour as a lowercase "#rrggbb" string, gamut-clamped.
func (c Oklch) Hex() string {
	return ClampToSRGBGamut(c).RGB().Hex()
}

// linearRGB converts OKLCH to linear RGB without any range clamping.
// Components outside [0,1] indicate the colour is outside the sRGB gamut.
func (c Oklch) linearRGB() (r, g, b float64) {
	hRad := c.H * (math.Pi / 180.0)
	a := c.C * math.Cos(hRad)
	bb := c.C * math.Sin(hRad)
	return oklabToLinear(c.L, a, bb)
}

// inSRGBGamut reports whether the colour has an exact sRGB representation.
func (c Oklch) inSRGBGamut() bool {
	const eps = 1e-6
	r, g, b := c.linearRGB()
	return r >= -eps && r <= 1+eps &&
		g >= -eps && g <= 1+eps &&
		b >= -eps && b <= 1+eps
}

// ClampToSRGBGamut reduces chroma, holding L and H fixed, until the colour is
// representable in sRGB. Lightness and hue are never altered; inputs outside
// their legal ranges are clamped at the boundary first. This is a normal,
// expected code path for saturated candidates, not an error.
func ClampToSRGBGamut(c Oklch) Oklch {
	c = Oklch{L: clamp01(c.L), C: math.Max(0, c.C), H: normaliseHue(c.H)}
	if c.inSRGBGamut() {
		return c
	}

	// Bisect on chroma: zero chroma at any L is always in gamut.
	lo, hi := 0.0, c.C
	for i := 0; i < 24; i++ {
		mid := (lo + hi) / 2
		if (Oklch{L: c.L, C: mid, H: c.H}).inSRGBGamut() {
			lo = mid
		} else {
			hi = mid
		}
	}
	return Oklch{L: c.L, C: lo, H: c.H}
}

// srgbToLinear converts a single sRGB component [0,1] to linear RGB.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearToSRGB converts a single linear RGB component [0,1] to sRGB.
func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// linearToOklab converts linear RGB to OKLab (L, a, b).
func linearToOklab(r, g, b float64) (float64, float64, float64) {
	// M1: linear RGB -> LMS.
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	// Cube-root compression.
	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	// M2: LMS' -> Lab.
	L := 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	A := 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	B := 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp

	return L, A, B
}

// oklabToLinear converts OKLab (L, a, b) to linear RGB.
func oklabToLinear(L, a, b float64) (float64, float64, float64) {
	// Inverse M2: Lab -> LMS'.
	lp := L + 0.3963377774*a + 0.2158037573*b
	mp := L - 0.1055613458*a - 0.0638541728*b
	sp := L - 0.0894841775*a - 1.2914855480*b

	// Cube: LMS' -> LMS.
	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	// Inverse M1: LMS -> linear RGB.
	r := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return r, g, bl
}
