package icon

import (
	"image"
	"image/color"
	"math"

	"github.com/AnyUserName/lockicon-cli/internal/profile"
)

// Render draws the padlock glyph for one icon size onto a fresh canvas.
// Geometry scales linearly against the profile's reference design size, and
// every coordinate truncates toward zero, so a given size always produces
// the same pixels. Sizes at or below zero yield an empty canvas; drawing is
// clipped, so no size can index outside the buffer.
func Render(size int, p profile.Profile) *image.NRGBA {
	if size < 0 {
		size = 0 // image.Rect would flip a negative corner into a real area
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	fill(img, p.Background)
	if size == 0 {
		return img
	}

	ref := p.RefSize
	if ref <= 0 {
		ref = 24
	}
	scale := float64(size) / float64(ref)

	// Lock body: centered rectangle whose top edge sits at the vertical
	// midpoint of the canvas.
	bodyW := int(10 * scale)
	bodyH := int(8 * scale)
	bodyX := (size - bodyW) / 2
	bodyY := size / 2
	fillRect(img, bodyX, bodyY, bodyX+bodyW, bodyY+bodyH, p.Glyph)

	// Shackle: 19 short radial segments sampled every 10° over the upper
	// half circle. Not a true arc — the discrete sampling is part of the
	// glyph's look and must stay.
	cx := size / 2
	cy := bodyY - int(2*scale)
	radius := int(4 * scale)
	stroke := int(scale)
	if stroke < 1 {
		stroke = 1
	}
	for angle := 180; angle <= 360; angle += 10 {
		rad := float64(angle) * math.Pi / 180
		x1 := cx + int(float64(radius)*math.Cos(rad))
		y1 := cy + int(float64(radius)*math.Sin(rad))
		x2 := cx + int(float64(radius-2)*math.Cos(rad))
		y2 := cy + int(float64(radius-2)*math.Sin(rad))
		drawSegment(img, x1, y1, x2, y2, stroke, p.Glyph)
	}

	return img
}

// fill paints every pixel of the canvas.
func fill(img *image.NRGBA, c color.NRGBA) {
	b := img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// fillRect fills the inclusive rectangle [(x0,y0),(x1,y1)], clipped to the
// canvas bounds.
func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	b := img.Rect
	for y := max(y0, b.Min.Y); y <= min(y1, b.Max.Y-1); y++ {
		for x := max(x0, b.Min.X); x <= min(x1, b.Max.X-1); x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// drawSegment stamps a stroke×stroke square at evenly sampled points along
// the segment from (x1,y1) to (x2,y2).
func drawSegment(img *image.NRGBA, x1, y1, x2, y2, stroke int, c color.NRGBA) {
	steps := max(abs(x2-x1), abs(y2-y1))
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		x := x1 + int(math.Round(float64(x2-x1)*t))
		y := y1 + int(math.Round(float64(y2-y1)*t))
		half := stroke / 2
		fillRect(img, x-half, y-half, x-half+stroke-1, y-half+stroke-1, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// AvgColor calculates the average RGB color of an image.
func AvgColor(img image.Image) [3]uint8 {
	bounds := img.Bounds()
	w := uint64(bounds.Dx())
	h := uint64(bounds.Dy())
	count := w * h
	if count == 0 {
		return [3]uint8{0, 0, 0}
	}
	var rSum, gSum, bSum uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			rSum += uint64(r >> 8)
			gSum += uint64(g >> 8)
			bSum += uint64(b >> 8)
		}
	}
	return [3]uint8{
		uint8(rSum / count),
		uint8(gSum / count),
		uint8(bSum / count),
	}
}
