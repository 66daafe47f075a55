package icons

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"

	"icongen/config"
)

// WebGenerator produces the web icon suite: favicon.ico plus PNG favicons,
// Apple touch icons and Android Chrome icons
type WebGenerator struct {
	source string
	outDir string
	cfg    config.IconsConfig
}

// NewWebGenerator creates a web icon generator
func NewWebGenerator(source, outDir string, cfg config.IconsConfig) *WebGenerator {
	return &WebGenerator{
		source: source,
		outDir: outDir,
		cfg:    cfg,
	}
}

// Run generates the web icon suite. Load failures are reported and swallowed,
// matching the launcher icon generator.
func (g *WebGenerator) Run() error {
	log.Printf("Loading source icon: %s", g.source)

	src, err := imaging.Open(g.source)
	if err != nil {
		log.Printf("Error loading source icon: %v", err)
		return nil
	}

	nrgba := toNRGBA(src)

	if err := os.MkdirAll(g.outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", g.outDir, err)
	}

	if len(g.cfg.FaviconSizes) > 0 {
		if err := g.writeFavicon(nrgba); err != nil {
			return err
		}
	}

	// PNG fallbacks for browsers that ignore .ico
	for _, size := range g.cfg.FaviconSizes {
		name := fmt.Sprintf("favicon-%dx%d.png", size, size)
		if err := g.writePNG(nrgba, size, name); err != nil {
			return err
		}
	}

	for _, size := range g.cfg.AppleTouchIconSizes {
		name := fmt.Sprintf("apple-touch-icon-%dx%d.png", size, size)
		if err := g.writePNG(nrgba, size, name); err != nil {
			return err
		}
	}

	for _, size := range g.cfg.AndroidIconSizes {
		name := fmt.Sprintf("android-chrome-%dx%d.png", size, size)
		if err := g.writePNG(nrgba, size, name); err != nil {
			return err
		}
	}

	log.Printf("✅ Web icon suite generated successfully!")
	return nil
}

// writeFavicon writes a single multi-size favicon.ico
func (g *WebGenerator) writeFavicon(src image.Image) error {
	frames := make([]image.Image, 0, len(g.cfg.FaviconSizes))
	for _, size := range g.cfg.FaviconSizes {
		frames = append(frames, imaging.Resize(src, size, size, imaging.Lanczos))
	}

	path := filepath.Join(g.outDir, "favicon.ico")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := ico.EncodeAll(f, frames); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	log.Printf("  ✓ Saved: %s", path)
	return nil
}

// writePNG writes one square PNG icon of the given size
func (g *WebGenerator) writePNG(src image.Image, size int, name string) error {
	resized := imaging.Resize(src, size, size, imaging.Lanczos)

	path := filepath.Join(g.outDir, name)
	if err := SavePNG(resized, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	log.Printf("  ✓ Saved: %s", path)
	return nil
}
