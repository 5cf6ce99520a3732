// Package plot draws simple 2D diagrams (lines, markers, arrows, labels) into
// PNG images.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	gomath "math"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/Faultbox/fixturegen/pkg/math"
)

// Colors used by the diagrams.
var (
	Black = color.RGBA{0, 0, 0, 255}
	Gray  = color.RGBA{220, 220, 220, 255}
	Blue  = color.RGBA{31, 119, 180, 255}
	Red   = color.RGBA{214, 39, 40, 255}
)

const margin = 40

// Figure is a raster canvas mapped onto a data range.
type Figure struct {
	img  *image.RGBA
	face font.Face

	xMin, xMax, yMin, yMax float64
}

// New creates a white w x h figure showing [xMin,xMax] x [yMin,yMax].
func New(w, h int, xMin, xMax, yMin, yMax float64) (*Figure, error) {
	if w <= 2*margin || h <= 2*margin {
		return nil, fmt.Errorf("figure %dx%d too small", w, h)
	}
	if xMax <= xMin || yMax <= yMin {
		return nil, fmt.Errorf("empty data range [%g,%g]x[%g,%g]", xMin, xMax, yMin, yMax)
	}

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	return &Figure{
		img:  img,
		face: truetype.NewFace(ttf, &truetype.Options{Size: 12, DPI: 72, Hinting: font.HintingFull}),
		xMin: xMin, xMax: xMax, yMin: yMin, yMax: yMax,
	}, nil
}

// EqualAspect returns the data ranges grown so that one unit has the same pixel
// length on both axes of a w x h figure.
func EqualAspect(w, h int, xMin, xMax, yMin, yMax float64) (float64, float64, float64, float64) {
	pw, ph := float64(w-2*margin), float64(h-2*margin)
	sx, sy := (xMax-xMin)/pw, (yMax-yMin)/ph
	if sx > sy {
		mid, half := (yMin+yMax)/2, sx*ph/2
		return xMin, xMax, mid - half, mid + half
	}
	mid, half := (xMin+xMax)/2, sy*pw/2
	return mid - half, mid + half, yMin, yMax
}

// Image returns the underlying image.
func (f *Figure) Image() *image.RGBA {
	return f.img
}

// Pixel maps a data point to image coordinates.
func (f *Figure) Pixel(p math.Vec2) (float64, float64) {
	b := f.img.Bounds()
	pw := float64(b.Dx() - 2*margin)
	ph := float64(b.Dy() - 2*margin)
	x := margin + (p.U()-f.xMin)/(f.xMax-f.xMin)*pw
	y := float64(b.Dy()-margin) - (p.V()-f.yMin)/(f.yMax-f.yMin)*ph
	return x, y
}

// fill rasterizes a closed polygon given in pixel coordinates.
func (f *Figure) fill(c color.Color, pts ...[2]float64) {
	b := f.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		z.LineTo(float32(p[0]), float32(p[1]))
	}
	z.ClosePath()
	z.Draw(f.img, b, image.NewUniform(c), image.Point{})
}

// strokePx draws a segment of the given pixel width between pixel points.
func (f *Figure) strokePx(x0, y0, x1, y1, width float64, c color.Color) {
	dx, dy := x1-x0, y1-y0
	l := gomath.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	f.fill(c,
		[2]float64{x0 + nx, y0 + ny},
		[2]float64{x1 + nx, y1 + ny},
		[2]float64{x1 - nx, y1 - ny},
		[2]float64{x0 - nx, y0 - ny},
	)
}

// Line draws a segment between two data points.
func (f *Figure) Line(a, b math.Vec2, width float64, c color.Color) {
	x0, y0 := f.Pixel(a)
	x1, y1 := f.Pixel(b)
	f.strokePx(x0, y0, x1, y1, width, c)
}

// Polyline joins consecutive points.
func (f *Figure) Polyline(pts []math.Vec2, width float64, c color.Color) {
	for i := 1; i < len(pts); i++ {
		f.Line(pts[i-1], pts[i], width, c)
	}
}

// Markers draws a filled square of side size pixels at every point.
func (f *Figure) Markers(pts []math.Vec2, size float64, c color.Color) {
	h := size / 2
	for _, p := range pts {
		x, y := f.Pixel(p)
		f.fill(c,
			[2]float64{x - h, y - h},
			[2]float64{x + h, y - h},
			[2]float64{x + h, y + h},
			[2]float64{x - h, y + h},
		)
	}
}

// Arrow draws a line from -> to with a triangular head of head pixels.
func (f *Figure) Arrow(from, to math.Vec2, width, head float64, c color.Color) {
	x0, y0 := f.Pixel(from)
	x1, y1 := f.Pixel(to)
	dx, dy := x1-x0, y1-y0
	l := gomath.Hypot(dx, dy)
	if l == 0 {
		return
	}
	ux, uy := dx/l, dy/l
	bx, by := x1-ux*head, y1-uy*head
	f.strokePx(x0, y0, bx, by, width, c)
	f.fill(c,
		[2]float64{x1, y1},
		[2]float64{bx - uy*head/2, by + ux*head/2},
		[2]float64{bx + uy*head/2, by - ux*head/2},
	)
}

// Grid draws grid lines every step data units and the axes box.
func (f *Figure) Grid(step float64) {
	if step > 0 {
		for x := gomath.Ceil(f.xMin/step) * step; x <= f.xMax+1e-9; x += step {
			f.Line(math.V2(x, f.yMin), math.V2(x, f.yMax), 1, Gray)
			f.tickLabel(math.V2(x, f.yMin), fmt.Sprintf("%g", roundTick(x)), 0, 16)
		}
		for y := gomath.Ceil(f.yMin/step) * step; y <= f.yMax+1e-9; y += step {
			f.Line(math.V2(f.xMin, y), math.V2(f.xMax, y), 1, Gray)
			f.tickLabel(math.V2(f.xMin, y), fmt.Sprintf("%g", roundTick(y)), -34, 4)
		}
	}
	corners := []math.Vec2{
		math.V2(f.xMin, f.yMin), math.V2(f.xMax, f.yMin),
		math.V2(f.xMax, f.yMax), math.V2(f.xMin, f.yMax),
		math.V2(f.xMin, f.yMin),
	}
	f.Polyline(corners, 1, Black)
}

func roundTick(v float64) float64 {
	return gomath.Round(v*1000) / 1000
}

func (f *Figure) tickLabel(p math.Vec2, text string, dx, dy float64) {
	x, y := f.Pixel(p)
	f.textPx(x+dx, y+dy, text, Black)
}

// Label writes text with its baseline starting just right of a data point.
func (f *Figure) Label(p math.Vec2, text string, c color.Color) {
	x, y := f.Pixel(p)
	f.textPx(x+4, y-4, text, c)
}

// Title writes text centered above the plot area.
func (f *Figure) Title(text string) {
	w := font.MeasureString(f.face, text).Ceil()
	x := (f.img.Bounds().Dx() - w) / 2
	f.textPx(float64(x), margin-12, text, Black)
}

func (f *Figure) textPx(x, y float64, text string, c color.Color) {
	d := font.Drawer{
		Dst:  f.img,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.P(int(x), int(y)),
	}
	d.DrawString(text)
}

// EncodePNG writes the figure as PNG.
func (f *Figure) EncodePNG(w io.Writer) error {
	return png.Encode(w, f.img)
}

// SavePNG writes the figure to path.
func (f *Figure) SavePNG(path string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return f.EncodePNG(out)
}
