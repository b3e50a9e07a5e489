// Package imaging implements screenshot comparison and processing on top of
// github.com/disintegration/imaging.
package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/ktsujino/listlens"
)

// Compare performs a pixel-exact comparison of two images. When dimensions
// differ it short-circuits to 100% difference without touching pixel data.
// Pixels are compared on their RGB channels only; alpha is ignored so
// screenshots from different encoders agree.
func Compare(a, b image.Image) listlens.DiffResult {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return listlens.DiffResult{
			Identical:            false,
			DifferencePercentage: 100.0,
			DimensionsMatch:      false,
		}
	}

	total := ab.Dx() * ab.Dy()
	differing := 0
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			if !samePixel(a.At(ab.Min.X+x, ab.Min.Y+y), b.At(bb.Min.X+x, bb.Min.Y+y)) {
				differing++
			}
		}
	}

	pct := 0.0
	if total > 0 {
		pct = round2(100 * float64(differing) / float64(total))
	}

	return listlens.DiffResult{
		Identical:            differing == 0,
		DifferencePercentage: pct,
		DimensionsMatch:      true,
		DifferingPixels:      differing,
		TotalPixels:          total,
	}
}

// CompareFiles opens both image files and compares them. When diffPath is
// non-empty and the images share dimensions, a visual diff artifact is
// written there: differing pixels in red, matching pixels as grayscale
// luminance of the first image.
func CompareFiles(pathA, pathB, diffPath string) (listlens.DiffResult, error) {
	a, err := imaging.Open(pathA)
	if err != nil {
		return listlens.DiffResult{}, listlens.Errorf(listlens.EINVALID, "opening %s: %v", pathA, err)
	}
	b, err := imaging.Open(pathB)
	if err != nil {
		return listlens.DiffResult{}, listlens.Errorf(listlens.EINVALID, "opening %s: %v", pathB, err)
	}

	result := Compare(a, b)

	if diffPath != "" && result.DimensionsMatch && !result.Identical {
		if err := imaging.Save(DiffImage(a, b), diffPath); err != nil {
			return result, listlens.Errorf(listlens.EINTERNAL, "saving diff artifact: %v", err)
		}
	}

	return result, nil
}

// DiffImage renders the visual diff artifact for two equally-sized images.
// This is a visualization aid, not part of the pass/fail contract.
func DiffImage(a, b image.Image) *image.RGBA {
	bounds := a.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	bb := b.Bounds()

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			pa := a.At(bounds.Min.X+x, bounds.Min.Y+y)
			pb := b.At(bb.Min.X+x, bb.Min.Y+y)
			if !samePixel(pa, pb) {
				out.Set(x, y, color.RGBA{R: 255, A: 255})
				continue
			}
			gray := color.GrayModel.Convert(pa).(color.Gray)
			out.Set(x, y, color.RGBA{R: gray.Y, G: gray.Y, B: gray.Y, A: 255})
		}
	}

	return out
}

// samePixel compares two pixels on their RGB channels.
func samePixel(a, b color.Color) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	return ar == br && ag == bg && ab == bb
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
