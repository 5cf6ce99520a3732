package plot

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/Faultbox/fixturegen/pkg/cone"
	"github.com/Faultbox/fixturegen/pkg/math"
)

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestNewValidation(t *testing.T) {
	if _, err := New(50, 50, 0, 1, 0, 1); err == nil {
		t.Error("expected error for a figure smaller than its margins")
	}
	if _, err := New(200, 200, 1, 1, 0, 1); err == nil {
		t.Error("expected error for an empty range")
	}
}

func TestPixelMapping(t *testing.T) {
	f, err := New(240, 240, 0, 1, 0, 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	x, y := f.Pixel(math.V2(0, 0))
	if x != margin || y != 240-margin {
		t.Errorf("origin at (%v,%v), want (%d,%d)", x, y, margin, 240-margin)
	}
	x, y = f.Pixel(math.V2(1, 1))
	if x != 240-margin || y != margin {
		t.Errorf("(1,1) at (%v,%v), want (%d,%d)", x, y, 240-margin, margin)
	}
}

func TestEqualAspect(t *testing.T) {
	xMin, xMax, yMin, yMax := EqualAspect(480, 280, 0, 1, 0, 1)
	// 400x200 plot area: x range must double.
	if yMin != 0 || yMax != 1 {
		t.Errorf("y range changed to [%v,%v]", yMin, yMax)
	}
	if w := xMax - xMin; w < 2-1e-9 || w > 2+1e-9 {
		t.Errorf("x range width = %v, want 2", xMax-xMin)
	}
}

func TestLineDrawsPixels(t *testing.T) {
	f, err := New(200, 200, 0, 1, 0, 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	f.Line(math.V2(0, 0.5), math.V2(1, 0.5), 3, Blue)

	x, y := f.Pixel(math.V2(0.5, 0.5))
	if isWhite(f.Image().At(int(x), int(y))) {
		t.Error("expected a colored pixel on the line")
	}
	if !isWhite(f.Image().At(int(x), int(y)-20)) {
		t.Error("expected background away from the line")
	}
}

func TestConeUV(t *testing.T) {
	path := cone.UVPath(math.V2(0.5, 0), cone.DefaultSineAngles, cone.UVSinePoint)
	f, err := ConeUV(path, 300, 300)
	if err != nil {
		t.Fatalf("ConeUV failed: %v", err)
	}

	var buf bytes.Buffer
	if err := f.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 300 || img.Bounds().Dy() != 300 {
		t.Errorf("unexpected size %v", img.Bounds())
	}

	x, y := f.Pixel(path[1])
	if isWhite(img.At(int(x), int(y))) {
		t.Error("expected a marker at the first UV point")
	}
}

func TestConeNormalSave(t *testing.T) {
	r, h := math.V3(0.5, 0, 0), math.V3(0, 3, 0)
	f, err := ConeNormal(r, h, cone.SideNormal(r, h), 300, 400)
	if err != nil {
		t.Fatalf("ConeNormal failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "normal.png")
	if err := f.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
}
