package main

import (
	"fmt"
	"log"
	"os"

	"icongen/config"
	"icongen/icons"
)

func main() {
	fmt.Println("Icongen - Web Icon Suite Generator")
	fmt.Println("==================================")

	// Optional config file; defaults cover the standard layout
	cfg := config.Default()
	if len(os.Args) > 1 {
		var err error
		cfg, err = config.Load(os.Args[1])
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	gen := icons.NewWebGenerator(cfg.Source, cfg.Web.OutputDir, cfg.Web.Icons)
	if err := gen.Run(); err != nil {
		log.Fatalf("Web icon generation failed: %v", err)
	}
}
