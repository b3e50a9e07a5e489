package imaging

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/disintegration/imaging"
	"github.com/ktsujino/listlens"
)

// Info describes a screenshot on disk.
type Info struct {
	Path     string `json:"path"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
	Bytes    int    `json:"bytes"`
	Checksum string `json:"checksum"`
}

// Analyze reads an image file and reports its dimensions, format, size, and
// content checksum. The checksum identifies byte-identical screenshots
// cheaply before any pixel comparison.
func Analyze(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, listlens.Errorf(listlens.EINVALID, "reading %s: %v", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, listlens.Errorf(listlens.EINVALID, "opening %s: %v", path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, listlens.Errorf(listlens.EINVALID, "decoding %s: %v", path, err)
	}

	return &Info{
		Path:     path,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Format:   format,
		Bytes:    len(data),
		Checksum: fmt.Sprintf("%016x", xxhash.Sum64(data)),
	}, nil
}

// Resize scales the image at path to fit within maxWidth x maxHeight,
// preserving aspect ratio, and saves it to outPath. Images already within
// bounds are copied unscaled. Lanczos resampling keeps text in screenshots
// legible.
func Resize(path, outPath string, maxWidth, maxHeight int) error {
	img, err := imaging.Open(path)
	if err != nil {
		return listlens.Errorf(listlens.EINVALID, "opening %s: %v", path, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxWidth || bounds.Dy() > maxHeight {
		img = imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
	}

	if err := imaging.Save(img, outPath); err != nil {
		return listlens.Errorf(listlens.EINTERNAL, "saving %s: %v", outPath, err)
	}
	return nil
}

// Crop extracts the rectangle from the image at path and saves it to
// outPath.
func Crop(path, outPath string, rect image.Rectangle) error {
	img, err := imaging.Open(path)
	if err != nil {
		return listlens.Errorf(listlens.EINVALID, "opening %s: %v", path, err)
	}

	if !rect.In(img.Bounds()) {
		return listlens.Errorf(listlens.EINVALID, "crop rectangle %v outside image bounds %v", rect, img.Bounds())
	}

	if err := imaging.Save(imaging.Crop(img, rect), outPath); err != nil {
		return listlens.Errorf(listlens.EINTERNAL, "saving %s: %v", outPath, err)
	}
	return nil
}
