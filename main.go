package main

import (
	"fmt"
	"log"
	"os"

	"icongen/icons"
)

func main() {
	// Progress reporting belongs on stdout
	log.SetOutput(os.Stdout)

	fmt.Println("Icongen - Android Launcher Icon Generator")
	fmt.Println("=========================================")

	if err := icons.Generate(); err != nil {
		log.Fatalf("Icon generation failed: %v", err)
	}
}
