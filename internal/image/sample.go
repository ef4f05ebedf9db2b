// Package image provides pixel sampling for seed colour extraction.
package image

import (
	"fmt"
	"image"
	"sort"

	"github.com/jmylchreest/tonal/internal/colour"
)

// sampleGrid caps the sampling grid at roughly 100x100 probes; enough to
// characterise a wallpaper without walking every pixel.
const sampleGrid = 100

// keepFraction is the share of the most saturated samples averaged into the
// seed colour. Favouring saturated pixels keeps a dull sky from washing out
// the one colour a user actually notices in a picture.
const keepFraction = 0.1

// SeedColour reduces an image to one representative hex colour by sampling
// pixels on a fixed grid and averaging the most saturated tenth of them.
// The grid is deterministic, so the same image always yields the same seed.
func SeedColour(img image.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("image cannot be nil")
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return "", fmt.Errorf("image has no pixels")
	}

	step := max(bounds.Dx()/sampleGrid, bounds.Dy()/sampleGrid, 1)

	type sample struct {
		rgb        colour.RGB
		saturation float64
	}
	var samples []sample

	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			rgb := colour.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
			_, s, l := colour.RGBToHSL(rgb)
			// Discard near-black and near-white probes; they carry no hue.
			if l < 0.05 || l > 0.95 {
				continue
			}
			samples = append(samples, sample{rgb: rgb, saturation: s})
		}
	}

	if len(samples) == 0 {
		return "", fmt.Errorf("image contains no usable colour samples")
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].saturation > samples[j].saturation
	})

	keep := int(float64(len(samples)) * keepFraction)
	if keep < 1 {
		keep = 1
	}

	var sumR, sumG, sumB int
	for _, s := range samples[:keep] {
		sumR += int(s.rgb.R)
		sumG += int(s.rgb.G)
		sumB += int(s.rgb.B)
	}
	avg := colour.RGB{
		R: uint8(sumR / keep),
		G: uint8(sumG / keep),
		B: uint8(sumB / keep),
	}
	return avg.Hex(), nil
}

// SeedColourFromFile loads an image and reduces it to a seed colour.
func SeedColourFromFile(path string) (string, error) {
	img, err := NewFileLoader().Load(path)
	if err != nil {
		return "", err
	}
	return SeedColour(img)
}
