package icons

import (
	"path/filepath"
	"testing"
)

func TestSavePNG(t *testing.T) {
	tmpDir := t.TempDir()
	source := filepath.Join(tmpDir, "in.png")
	writeTestIcon(t, source, 64)

	img := decodePNG(t, source)
	out := filepath.Join(tmpDir, "out.png")
	if err := SavePNG(img, out); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	decoded := decodePNG(t, out)
	b := decoded.Bounds()
	if b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("Expected 64x64, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestSaveWebP(t *testing.T) {
	tmpDir := t.TempDir()
	source := filepath.Join(tmpDir, "in.png")
	writeTestIcon(t, source, 64)

	img := decodePNG(t, source)
	out := filepath.Join(tmpDir, "out.webp")
	if err := SaveWebP(img, out, WebPQuality); err != nil {
		t.Fatalf("SaveWebP failed: %v", err)
	}

	decoded := decodeWebP(t, out)
	b := decoded.Bounds()
	if b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("Expected 64x64, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestSaveWebPBadPath(t *testing.T) {
	tmpDir := t.TempDir()
	source := filepath.Join(tmpDir, "in.png")
	writeTestIcon(t, source, 16)

	img := decodePNG(t, source)
	out := filepath.Join(tmpDir, "missing", "out.webp")
	if err := SaveWebP(img, out, WebPQuality); err == nil {
		t.Error("Expected error for missing output directory")
	}
}
