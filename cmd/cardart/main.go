package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/appengine-ltd/secret-cult/internal/cardart"
	"github.com/appengine-ltd/secret-cult/internal/config"
)

func main() {
	var (
		outDir string
		size   int
	)
	flag.StringVar(&outDir, "out", filepath.Join("assets", "cards"), "output directory")
	flag.IntVar(&size, "size", 128, "emblem size in pixels")
	flag.Parse()

	paths, err := cardart.WriteAll(outDir, size)
	if err != nil {
		config.Exitf("error: %v", err)
	}
	for _, p := range paths {
		fmt.Printf("wrote %s\n", p)
	}
}
