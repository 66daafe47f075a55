package icons

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"icongen/config"
)

func TestWebGeneratorRun(t *testing.T) {
	tmpDir := t.TempDir()
	source := filepath.Join(tmpDir, "Icon.png")
	writeTestIcon(t, source, 512)

	outDir := filepath.Join(tmpDir, "web")
	cfg := config.Default().Web.Icons

	g := NewWebGenerator(source, outDir, cfg)
	if err := g.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// favicon.ico: ICONDIR header with one entry per favicon size
	icoData := readFile(t, filepath.Join(outDir, "favicon.ico"))
	if len(icoData) < 6 {
		t.Fatalf("favicon.ico too short: %d bytes", len(icoData))
	}
	if binary.LittleEndian.Uint16(icoData[2:4]) != 1 {
		t.Errorf("favicon.ico is not an ICO file")
	}
	count := int(binary.LittleEndian.Uint16(icoData[4:6]))
	if count != len(cfg.FaviconSizes) {
		t.Errorf("Expected %d ICO entries, got %d", len(cfg.FaviconSizes), count)
	}

	checkSize := func(name string, size int) {
		img := decodePNG(t, filepath.Join(outDir, name))
		b := img.Bounds()
		if b.Dx() != size || b.Dy() != size {
			t.Errorf("%s: expected %dx%d, got %dx%d", name, size, size, b.Dx(), b.Dy())
		}
	}

	for _, size := range cfg.FaviconSizes {
		checkSize(fmt.Sprintf("favicon-%dx%d.png", size, size), size)
	}
	for _, size := range cfg.AppleTouchIconSizes {
		checkSize(fmt.Sprintf("apple-touch-icon-%dx%d.png", size, size), size)
	}
	for _, size := range cfg.AndroidIconSizes {
		checkSize(fmt.Sprintf("android-chrome-%dx%d.png", size, size), size)
	}
}

func TestWebGeneratorMissingSource(t *testing.T) {
	tmpDir := t.TempDir()
	outDir := filepath.Join(tmpDir, "web")

	g := NewWebGenerator(filepath.Join(tmpDir, "Icon.png"), outDir, config.Default().Web.Icons)
	if err := g.Run(); err != nil {
		t.Fatalf("Run should swallow a load failure, got: %v", err)
	}

	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Errorf("Expected no output directory for missing source")
	}
}
