package preview

import (
	"image"

	"golang.org/x/image/draw"
)

const (
	MinWindowWidth  = 800
	MinWindowHeight = 600
)

// WindowSize grows the minimum window size to fit img.
func WindowSize(img image.Point) image.Point {
	return image.Pt(max(img.X, MinWindowWidth), max(img.Y, MinWindowHeight))
}

// FitSize scales img up or down to the largest size that fits area keeping
// its aspect ratio.
func FitSize(img, area image.Point) image.Point {
	if img.X <= 0 || img.Y <= 0 || area.X <= 0 || area.Y <= 0 {
		return image.Point{}
	}

	// Compare img.X/img.Y against area.X/area.Y without floats.
	if img.X*area.Y >= img.Y*area.X {
		return image.Pt(area.X, max(1, img.Y*area.X/img.X))
	}
	return image.Pt(max(1, img.X*area.Y/img.Y), area.Y)
}

// Render returns src resampled to FitSize(src, area) in either direction.
// src is returned as is when it already has that size.
func Render(src image.Image, area image.Point) image.Image {
	size := FitSize(src.Bounds().Size(), area)
	if size == (image.Point{}) || size == src.Bounds().Size() {
		return src
	}

	dst := image.NewRGBA(image.Rectangle{Max: size})
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
