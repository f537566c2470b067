package collision

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
)

func TestRects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     core.Rect
		expected bool
	}{
		{"overlap", core.NewRect(0, 0, 10, 10), core.NewRect(5, 5, 10, 10), true},
		{"apart", core.NewRect(0, 0, 10, 10), core.NewRect(20, 20, 10, 10), false},
		{"touching right edge", core.NewRect(0, 0, 10, 10), core.NewRect(10, 0, 10, 10), true},
		{"touching bottom edge", core.NewRect(0, 0, 10, 10), core.NewRect(0, 10, 10, 10), true},
		{"one pixel gap", core.NewRect(0, 0, 10, 10), core.NewRect(11, 0, 10, 10), false},
		{"contained", core.NewRect(0, 0, 100, 100), core.NewRect(40, 40, 5, 5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rects(tt.a, tt.b); got != tt.expected {
				t.Errorf("Rects(a, b) = %v, expected %v", got, tt.expected)
			}
			if got := Rects(tt.b, tt.a); got != tt.expected {
				t.Errorf("Rects(b, a) = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestCircles(t *testing.T) {
	a := Circle{Center: mathx.Vec2f{}, Radius: 3}

	tests := []struct {
		name     string
		b        Circle
		expected bool
	}{
		{"distance equals radii", Circle{Center: mathx.Vec2f{X: 5}, Radius: 2}, false},
		{"distance just below radii", Circle{Center: mathx.Vec2f{X: 5 - 1e-9}, Radius: 2}, true},
		{"just inside", Circle{Center: mathx.Vec2f{X: 4}, Radius: 2}, true},
		{"diagonal exact", Circle{Center: mathx.Vec2f{X: 3, Y: 4}, Radius: 2}, false},
		{"fractional radius", Circle{Center: mathx.Vec2f{X: 3, Y: 4}, Radius: 2.5}, true},
		{"far", Circle{Center: mathx.Vec2f{X: 50, Y: 50}, Radius: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Circles(a, tt.b); got != tt.expected {
				t.Errorf("Circles() = %v, expected %v", got, tt.expected)
			}
			if got := Circles(tt.b, a); got != tt.expected {
				t.Errorf("Circles(b, a) = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestPoints(t *testing.T) {
	r := core.NewRect(0, 0, 10, 10)
	if !RectPoint(r, mathx.Vec(10, 10)) {
		t.Error("RectPoint() on the corner = false, expected true")
	}
	if RectPoint(r, mathx.Vec(11, 5)) {
		t.Error("RectPoint() outside = true, expected false")
	}

	c := Circle{Center: mathx.Vec2f{}, Radius: 5}
	if CirclePoint(c, mathx.Vec2f{X: 5}) {
		t.Error("CirclePoint() on the rim = true, expected false")
	}
	if !CirclePoint(c, mathx.Vec2f{X: 4.999}) {
		t.Error("CirclePoint() inside = false, expected true")
	}
}

func TestMasks(t *testing.T) {
	ring := FromRows([]string{
		"####",
		"#..#",
		"#..#",
		"####",
	})
	dot := FromRows([]string{"#"})

	tests := []struct {
		name     string
		posB     mathx.Vec2i
		expected bool
		hit      core.Rect
	}{
		{"inside hole", mathx.Vec(1, 1), false, core.NewRect(1, 1, 1, 1)},
		{"on ring", mathx.Vec(3, 2), true, core.NewRect(3, 2, 1, 1)},
		{"outside", mathx.Vec(9, 9), false, core.Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, got := Masks(ring, mathx.Vec(0, 0), dot, tt.posB)
			if got != tt.expected {
				t.Errorf("Masks() = %v, expected %v", got, tt.expected)
			}
			if hit != tt.hit {
				t.Errorf("Masks() hit = %+v, expected %+v", hit, tt.hit)
			}
		})
	}
}

func TestMasksOverlapRegion(t *testing.T) {
	a := FromRows([]string{"##", "##"})
	b := FromRows([]string{"###", "###", "###"})

	hit, ok := Masks(a, mathx.Vec(2, 2), b, mathx.Vec(0, 0))
	if !ok {
		t.Fatal("Masks() = false, expected true")
	}
	if hit != core.NewRect(2, 2, 1, 1) {
		t.Errorf("hit = %+v, expected {2 2 1 1}", hit)
	}
}

func TestFromImageColorKey(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.RGBA{255, 0, 255, 255})
	img.Set(1, 0, color.RGBA{10, 20, 30, 255})
	img.Set(2, 0, color.RGBA{10, 20, 30, 0})

	key := color.RGBA{255, 0, 255, 255}
	m := FromImage(img, &key)

	expected := []bool{false, true, false}
	for x, want := range expected {
		if got := m.Opaque(x, 0); got != want {
			t.Errorf("Opaque(%d, 0) = %v, expected %v", x, got, want)
		}
	}
}

func TestLoadBMP(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{0, 0, 0, 255})
		}
	}
	img.Set(1, 1, color.RGBA{200, 0, 0, 255})

	path := filepath.Join(t.TempDir(), "ship.bmp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := bmp.Encode(f, img); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	f.Close()

	key := color.RGBA{0, 0, 0, 255}
	m, err := Load(path, &key)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Width() != 4 || m.Height() != 4 {
		t.Errorf("Load() size = %dx%d, expected 4x4", m.Width(), m.Height())
	}
	if m.Count() != 1 || !m.Opaque(1, 1) {
		t.Errorf("Load() opaque pixels = %d, expected only (1,1)", m.Count())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.bmp"), nil); err == nil {
		t.Error("Load() on a missing file returned nil error")
	}
}

func TestScale(t *testing.T) {
	m := FromRows([]string{"#.", ".#"}).Scale(4, 4)
	if m.Count() != 8 {
		t.Errorf("Scale() opaque = %d, expected 8", m.Count())
	}
	if !m.Opaque(3, 3) || m.Opaque(3, 0) {
		t.Error("Scale() did not keep the diagonal pattern")
	}
}
