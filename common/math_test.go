package common

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNormalizeOr(t *testing.T) {
	fallback := mgl32.Vec3{0, 1, 0}
	if got := NormalizeOr(mgl32.Vec3{}, fallback); got != fallback {
		t.Fatalf("zero vector: got %v", got)
	}
	if got := NormalizeOr(mgl32.Vec3{0, 0, -0.2}, fallback); !approxVec(got, mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("got %v", got)
	}
}

func TestBuildModelMatrix(t *testing.T) {
	m := BuildModelMatrix(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{2, 2, 2}, mgl32.Vec3{0, 1, 0}, math.Pi/2)
	got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	// scale to (2,0,0), rotate about +Y to (0,0,-2), translate
	if !approxVec(got, mgl32.Vec3{1, 2, 1}) {
		t.Fatalf("got %v", got)
	}

	noRot := BuildModelMatrix(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{}, 1)
	if !noRot.ApproxEqualThreshold(mgl32.Ident4(), eps) {
		t.Fatalf("zero axis should not rotate: %v", noRot)
	}
}

func TestWebGPUClipCorrection(t *testing.T) {
	proj := mgl32.Perspective(1, 1, 0.5, 10)
	m := WebGPUClipCorrection.Mul4(proj)

	near := m.Mul4x1(mgl32.Vec4{0, 0, -0.5, 1})
	far := m.Mul4x1(mgl32.Vec4{0, 0, -10, 1})
	if d := near.Z() / near.W(); !approx(d, 0) {
		t.Errorf("near depth %v, want 0", d)
	}
	if d := far.Z() / far.W(); !approx(d, 1) {
		t.Errorf("far depth %v, want 1", d)
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce(float32(0), 0, 3, 4); got != 3 {
		t.Fatalf("got %v", got)
	}
	if got := Coalesce("", ""); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestCheckerTexture(t *testing.T) {
	a := color.RGBA{255, 0, 0, 255}
	b := color.RGBA{0, 0, 255, 255}
	tex := CheckerTexture(8, 2, a, b)

	if tex.Width != 8 || tex.Height != 8 || len(tex.Pixels) != 8*8*4 {
		t.Fatalf("unexpected size %dx%d (%d bytes)", tex.Width, tex.Height, len(tex.Pixels))
	}
	pixel := func(x, y int) []byte {
		i := (y*8 + x) * 4
		return tex.Pixels[i : i+4]
	}
	if !bytes.Equal(pixel(0, 0), []byte{255, 0, 0, 255}) {
		t.Errorf("top-left = %v", pixel(0, 0))
	}
	if !bytes.Equal(pixel(4, 0), []byte{0, 0, 255, 255}) {
		t.Errorf("second cell = %v", pixel(4, 0))
	}
	if !bytes.Equal(pixel(4, 4), []byte{255, 0, 0, 255}) {
		t.Errorf("diagonal cell = %v", pixel(4, 4))
	}
}

func TestDecodeTexture(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.Set(2, 1, color.NRGBA{10, 20, 30, 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	tex, err := DecodeTexture(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if tex.Width != 3 || tex.Height != 2 {
		t.Fatalf("size %dx%d", tex.Width, tex.Height)
	}
	i := (1*3 + 2) * 4
	if !bytes.Equal(tex.Pixels[i:i+4], []byte{10, 20, 30, 255}) {
		t.Fatalf("pixel = %v", tex.Pixels[i:i+4])
	}
}

func TestDecodeTextureDownscales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, MaxTextureEdge*2, MaxTextureEdge/2))
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	tex, err := DecodeTexture(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if tex.Width != MaxTextureEdge || tex.Height != MaxTextureEdge/4 {
		t.Fatalf("size %dx%d", tex.Width, tex.Height)
	}
}

func TestDecodeTextureRejectsGarbage(t *testing.T) {
	if _, err := DecodeTexture(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Fatal("expected error")
	}
}
