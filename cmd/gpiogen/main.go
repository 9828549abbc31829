// Command gpiogen renders one Go package per port from the pin table.
//
// Each package declares a PinID type per bonded pin, the port's Parts
// collection and the Split function that hands the pins out.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

func main() {
	tablePath := flag.String("table", "", "Path to the pin table YAML")
	outputDir := flag.String("output", "", "Directory the port packages are written under")
	flag.Parse()

	if *tablePath == "" || *outputDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: gpiogen -table <path> -output <dir>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*tablePath, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(tablePath, outputDir string) error {
	table, err := LoadTable(tablePath)
	if err != nil {
		return fmt.Errorf("loading table: %w", err)
	}

	for _, port := range table.Ports {
		code, err := GeneratePort(table, port)
		if err != nil {
			return fmt.Errorf("generating port %s: %w", port.Name, err)
		}

		dir := filepath.Join(outputDir, port.Package)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		outPath := filepath.Join(dir, port.Package+"_gen.go")
		if err := writeFormatted(outPath, code); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		fmt.Printf("  generated %s\n", outPath)
	}
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Keep the raw output around for debugging the templates.
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
