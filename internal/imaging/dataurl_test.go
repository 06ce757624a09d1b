package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestDataURLRoundTrip(t *testing.T) {
	raw := []byte("hello bytes")
	uri := EncodeDataURL("image/png", raw)
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("unexpected prefix: %q", uri)
	}

	mimeType, got, err := DecodeDataURL(uri)
	if err != nil {
		t.Fatalf("DecodeDataURL: %v", err)
	}
	if mimeType != "image/png" {
		t.Errorf("mimeType = %q, want image/png", mimeType)
	}
	if !bytes.Equal(got, raw) {
		t.Errorf("payload = %q, want %q", got, raw)
	}
}

func TestDecodeDataURLRejectsGarbage(t *testing.T) {
	for _, uri := range []string{
		"not a uri",
		"data:image/png,plain-not-base64",
		"data:image/png;base64,@@@@",
	} {
		if _, _, err := DecodeDataURL(uri); err == nil {
			t.Errorf("DecodeDataURL(%q) succeeded, want error", uri)
		}
	}
}

func TestReadFileAsDataURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pic.bin")
	if err := os.WriteFile(path, pngBytes(t, 4, 4), 0o644); err != nil {
		t.Fatal(err)
	}

	uri, err := ReadFileAsDataURL(path)
	if err != nil {
		t.Fatalf("ReadFileAsDataURL: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("sniffed type wrong: %q", uri[:40])
	}
}

func TestReadFileAsDataURLRejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	if err := os.WriteFile(path, []byte("just text, no pixels"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFileAsDataURL(path); err == nil {
		t.Errorf("non-image file accepted")
	}
}

func TestShrinkDataURLPassThrough(t *testing.T) {
	uri := EncodeDataURL("image/png", pngBytes(t, 10, 10))
	got, err := ShrinkDataURL(uri, 20)
	if err != nil {
		t.Fatalf("ShrinkDataURL: %v", err)
	}
	if got != uri {
		t.Errorf("small image should pass through unchanged")
	}
}

func TestShrinkDataURLDownscales(t *testing.T) {
	uri := EncodeDataURL("image/png", pngBytes(t, 40, 20))
	got, err := ShrinkDataURL(uri, 20)
	if err != nil {
		t.Fatalf("ShrinkDataURL: %v", err)
	}
	mimeType, raw, err := DecodeDataURL(got)
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if mimeType != "image/jpeg" {
		t.Errorf("mimeType = %q, want image/jpeg", mimeType)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if cfg.Width != 20 || cfg.Height != 10 {
		t.Errorf("dimensions = %dx%d, want 20x10", cfg.Width, cfg.Height)
	}
}
