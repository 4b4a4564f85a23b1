package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/vsinha/transferplan/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		inputFile = flag.String(
			"input",
			"",
			"Path to inventory table (.csv, .xlsx or .xls)",
		)
		outputDir = flag.String("output", ".", "Output directory for generated files")
		format    = flag.String("format", "text", "Output format: text, json, csv, xlsx, html")
		verbose   = flag.Bool("verbose", false, "Enable verbose output")
		help      = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		InputFile: *inputFile,
		OutputDir: *outputDir,
		Format:    *format,
		Verbose:   *verbose,
		Help:      *help,
	}

	// Create and execute command
	cmd := commands.NewPlanCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
