package preview

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWindowSize(t *testing.T) {
	tests := []struct {
		img      image.Point
		expected image.Point
	}{
		{img: image.Pt(1920, 1080), expected: image.Pt(1920, 1080)},
		{img: image.Pt(400, 300), expected: image.Pt(800, 600)},
		{img: image.Pt(1024, 200), expected: image.Pt(1024, 600)},
		{img: image.Pt(300, 900), expected: image.Pt(800, 900)},
	}

	for _, tc := range tests {
		require.Equal(t, tc.expected, WindowSize(tc.img), tc.img.String())
	}
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		name     string
		img      image.Point
		area     image.Point
		expected image.Point
	}{
		{name: "wide into box", img: image.Pt(1920, 1080), area: image.Pt(800, 600), expected: image.Pt(800, 450)},
		{name: "tall into box", img: image.Pt(600, 1200), area: image.Pt(800, 600), expected: image.Pt(300, 600)},
		{name: "smaller is enlarged", img: image.Pt(400, 300), area: image.Pt(800, 600), expected: image.Pt(800, 600)},
		{name: "smaller into padded area", img: image.Pt(400, 300), area: image.Pt(780, 520), expected: image.Pt(693, 520)},
		{name: "small tall", img: image.Pt(100, 400), area: image.Pt(800, 600), expected: image.Pt(150, 600)},
		{name: "exact fit", img: image.Pt(800, 600), area: image.Pt(800, 600), expected: image.Pt(800, 600)},
		{name: "empty area", img: image.Pt(800, 600), area: image.Pt(0, 600), expected: image.Point{}},
		{name: "sliver", img: image.Pt(10000, 1), area: image.Pt(100, 100), expected: image.Pt(100, 1)},
	}

	for _, tc := range tests {
		require.Equal(t, tc.expected, FitSize(tc.img, tc.area), tc.name)
	}
}

func TestRenderScalesDown(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1920, 1080))
	for y := 0; y < 1080; y++ {
		for x := 0; x < 1920; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 0xff, A: 0xff})
		}
	}

	out := Render(src, image.Pt(800, 600))
	require.Equal(t, image.Pt(800, 450), out.Bounds().Size())
	r, _, _, a := out.At(400, 225).RGBA()
	require.Equal(t, uint32(0xffff), r)
	require.Equal(t, uint32(0xffff), a)
}

func TestRenderScalesSmallImageUp(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 300))
	for y := 0; y < 300; y++ {
		for x := 0; x < 400; x++ {
			src.SetRGBA(x, y, color.RGBA{G: 0xff, A: 0xff})
		}
	}

	out := Render(src, image.Pt(780, 520))
	require.Equal(t, image.Pt(693, 520), out.Bounds().Size())
	_, g, _, a := out.At(346, 260).RGBA()
	require.Equal(t, uint32(0xffff), g)
	require.Equal(t, uint32(0xffff), a)
}

func TestRenderKeepsFittingImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 800, 600))
	require.Same(t, src, Render(src, image.Pt(800, 600)))
}
