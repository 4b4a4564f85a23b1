package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/vsinha/transferplan/pkg/application/services/allocation"
	"github.com/vsinha/transferplan/pkg/domain/entities"
	"github.com/vsinha/transferplan/pkg/domain/services"
	"github.com/vsinha/transferplan/pkg/infrastructure/events"
	"github.com/vsinha/transferplan/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/transferplan/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/transferplan/pkg/infrastructure/repositories/xlsx"
	"github.com/vsinha/transferplan/pkg/interfaces/cli/output"
)

// Config holds configuration for the plan command
type Config struct {
	InputFile string
	OutputDir string
	Format    string
	Verbose   bool
	Help      bool
}

// PlanCommand handles the transfer planning execution logic
type PlanCommand struct {
	config Config
}

// NewPlanCommand creates a new plan command with the given configuration
func NewPlanCommand(config Config) *PlanCommand {
	return &PlanCommand{
		config: config,
	}
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// Load the inventory table
	if c.config.Verbose {
		fmt.Printf("📂 Loading inventory table from %s...\n", c.config.InputFile)
	}

	rows, err := c.loadRows()
	if err != nil {
		return fmt.Errorf("error loading inventory table: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Loaded %d rows\n", len(rows))
	}

	// Validate table structure before the engine runs
	if c.config.Verbose {
		fmt.Println("🔍 Validating inventory table...")
	}

	validation := services.NewRowValidator().ValidateRows(rows)
	for _, warning := range validation.Warnings {
		fmt.Printf("Warning: %s\n", warning)
	}
	if !validation.IsValid() {
		return fmt.Errorf("inventory table validation failed: %s",
			strings.Join(validation.Errors, "; "))
	}

	// Load rows into the repository
	rowRepo := memory.NewRowRepository()
	if err := rowRepo.LoadRows(rows); err != nil {
		return fmt.Errorf("failed to load rows into repository: %w", err)
	}

	// Run the allocation engine
	if c.config.Verbose {
		fmt.Println("🔄 Running transfer allocation...")
	}

	eventStore := events.NewInMemoryEventStore()
	engine := allocation.NewEngineWithEvents(eventStore)

	startTime := time.Now()
	result, err := engine.AllocateFromRepository(ctx, rowRepo)
	planTime := time.Since(startTime)

	if err != nil {
		return fmt.Errorf("error running allocation: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Allocation completed in %v: %d transfers\n\n", planTime, result.Summary.InstructionCount)
	}

	// Generate output
	outputConfig := output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
		PlanTime:  planTime,
		InputFile: c.config.InputFile,
	}

	return output.Generate(result, outputConfig)
}

// loadRows picks the loader by file extension
func (c *PlanCommand) loadRows() ([]*entities.InventoryRow, error) {
	switch strings.ToLower(filepath.Ext(c.config.InputFile)) {
	case ".csv":
		return csv.NewLoader().LoadRows(c.config.InputFile)
	case ".xlsx", ".xls":
		return xlsx.NewLoader().LoadRows(c.config.InputFile)
	default:
		return nil, fmt.Errorf("unsupported input format: %s (expected .csv, .xlsx or .xls)", c.config.InputFile)
	}
}

func (c *PlanCommand) validateInputs() error {
	if c.config.InputFile == "" {
		return fmt.Errorf("input file is required (use -input)")
	}

	switch c.config.Format {
	case "text", "json", "csv", "xlsx", "html":
	default:
		return fmt.Errorf("invalid format: %s (expected: text, json, csv, xlsx, html)", c.config.Format)
	}

	return nil
}

func (c *PlanCommand) showHelp() {
	fmt.Println("transferplan - two-stage depot transfer planning")
	fmt.Println()
	fmt.Println("Computes point-to-point transfer instructions that cover depot need")
	fmt.Println("from reported surplus, matching within each region first and across")
	fmt.Println("regions second.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  transferplan -input <file> [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -input    Inventory table (.csv, .xlsx or .xls) with columns:")
	fmt.Println("            region, depot, item, need, available")
	fmt.Println("  -output   Output directory for generated files (default: current directory)")
	fmt.Println("  -format   Output format: text, json, csv, xlsx, html (default: text)")
	fmt.Println("  -verbose  Enable verbose output")
	fmt.Println("  -help     Show this help message")
}
