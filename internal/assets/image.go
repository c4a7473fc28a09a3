package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // Register PNG format
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Bulb palette.
var (
	glassOn   = color.RGBA{255, 230, 60, 255}
	glassOff  = color.RGBA{90, 90, 90, 255}
	glowOn    = color.RGBA{255, 255, 0, 70}
	filament  = color.RGBA{255, 140, 0, 255}
	filamentD = color.RGBA{50, 50, 50, 255}
	baseColor = color.RGBA{160, 160, 170, 255}
	threadCol = color.RGBA{110, 110, 120, 255}
)

// LoadImage decodes an image file. A missing file returns an error wrapping
// fs.ErrNotExist.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// ScaleTo resizes img to w×h. Images already at that size are returned as is.
func ScaleTo(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// GenerateBulb draws a BulbWidth×BulbHeight light bulb, lit or dark.
func GenerateBulb(on bool) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, BulbWidth, BulbHeight))

	glass, wire := glassOff, filamentD
	if on {
		glass, wire = glassOn, filament
		fillCircle(dst, 40, 44, 39, glowOn)
	}

	// Glass
	fillCircle(dst, 40, 44, 30, glass)
	fillPolygon(dst, glass, [][2]float32{{24, 64}, {56, 64}, {50, 86}, {30, 86}})

	// Filament
	fillPolygon(dst, wire, [][2]float32{{33, 62}, {35, 62}, {37, 40}, {35, 40}})
	fillPolygon(dst, wire, [][2]float32{{45, 62}, {47, 62}, {45, 40}, {43, 40}})
	fillPolygon(dst, wire, [][2]float32{{35, 38}, {45, 38}, {45, 41}, {35, 41}})

	// Screw base with threads
	fillPolygon(dst, baseColor, [][2]float32{{29, 86}, {51, 86}, {51, 108}, {29, 108}})
	for y := float32(90); y < 108; y += 6 {
		fillPolygon(dst, threadCol, [][2]float32{{29, y}, {51, y + 2}, {51, y + 4}, {29, y + 2}})
	}
	fillPolygon(dst, threadCol, [][2]float32{{34, 108}, {46, 108}, {42, 116}, {38, 116}})

	return dst
}

// fillCircle approximates a circle with four cubic Béziers.
func fillCircle(dst *image.RGBA, cx, cy, r float32, c color.Color) {
	const k = 0.5523 // Control point distance for a quarter circle
	z := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	z.DrawOp = draw.Over
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k*r, cx+k*r, cy+r, cx, cy+r)
	z.CubeTo(cx-k*r, cy+r, cx-r, cy+k*r, cx-r, cy)
	z.CubeTo(cx-r, cy-k*r, cx-k*r, cy-r, cx, cy-r)
	z.CubeTo(cx+k*r, cy-r, cx+r, cy-k*r, cx+r, cy)
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

func fillPolygon(dst *image.RGBA, c color.Color, pts [][2]float32) {
	if len(pts) < 3 {
		return
	}
	z := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	z.DrawOp = draw.Over
	z.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		z.LineTo(p[0], p[1])
	}
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}
