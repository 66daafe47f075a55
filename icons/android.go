package icons

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// SourceIcon is the fixed path to the source icon file
const SourceIcon = "app/src/main/res/Icon.png"

// WebPQuality is the quality level for lossy WebP output
const WebPQuality = 95

// Density maps an Android density bucket to its launcher icon edge length
type Density struct {
	Name string
	Size int
}

// Densities lists all required density buckets in generation order
var Densities = []Density{
	{"mdpi", 48},
	{"hdpi", 72},
	{"xhdpi", 96},
	{"xxhdpi", 144},
	{"xxxhdpi", 192},
}

// launcherNames are the base names written per density. The round variant is
// a plain copy of the square resize - no circular mask is applied.
var launcherNames = []string{"ic_launcher", "ic_launcher_round"}

// Generator produces launcher icons for all density buckets
type Generator struct {
	source string
	resDir string
}

// NewGenerator creates a generator reading source and writing mipmap
// directories under resDir
func NewGenerator(source, resDir string) *Generator {
	return &Generator{
		source: source,
		resDir: resDir,
	}
}

// Generate runs the generator with the fixed source icon path
func Generate() error {
	return NewGenerator(SourceIcon, filepath.Dir(SourceIcon)).Run()
}

// Run generates all launcher icons. A source load failure is reported and
// swallowed; any later failure is returned to the caller.
func (g *Generator) Run() error {
	log.Printf("Loading source icon: %s", g.source)

	src, err := imaging.Open(g.source)
	if err != nil {
		log.Printf("Error loading source icon: %v", err)
		return nil
	}

	bounds := src.Bounds()
	log.Printf("Source icon size: %dx%d", bounds.Dx(), bounds.Dy())

	// Ensure an alpha channel before any resizing so every output has one
	nrgba := toNRGBA(src)

	for _, d := range Densities {
		log.Printf("Generating %s icons (%dx%d)...", d.Name, d.Size, d.Size)

		outDir := filepath.Join(g.resDir, "mipmap-"+d.Name)
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
		}

		resized := imaging.Resize(nrgba, d.Size, d.Size, imaging.Lanczos)

		// Standard launcher icon plus round variant as PNG
		for _, name := range launcherNames {
			pngPath := filepath.Join(outDir, name+".png")
			if err := SavePNG(resized, pngPath); err != nil {
				return fmt.Errorf("failed to save %s: %w", pngPath, err)
			}
			log.Printf("  ✓ Saved: %s", pngPath)
		}

		// Same pair in WebP for smaller APKs
		for _, name := range launcherNames {
			webpPath := filepath.Join(outDir, name+".webp")
			if err := SaveWebP(resized, webpPath, WebPQuality); err != nil {
				return fmt.Errorf("failed to save %s: %w", webpPath, err)
			}
			log.Printf("  ✓ Saved: %s", webpPath)
		}
	}

	log.Printf("✅ All icons generated successfully!")
	return nil
}
