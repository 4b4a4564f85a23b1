package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vsinha/transferplan/pkg/application/dto"
	"github.com/vsinha/transferplan/pkg/infrastructure/repositories/xlsx"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
	PlanTime  time.Duration
	InputFile string
}

// Generate creates output in the specified format
func Generate(result *dto.TransferResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	case "csv":
		return generateCSVOutput(result, config)
	case "xlsx":
		return generateXLSXOutput(result, config)
	case "html":
		return generateHTMLOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// planRecord is the serializable row shape shared by the json and csv writers
type planRecord struct {
	Classification string `json:"classification"`
	FromDepot      string `json:"from_depot"`
	ToDepot        string `json:"to_depot"`
	Item           string `json:"item"`
	Quantity       string `json:"quantity"`
}

func planRecords(result *dto.TransferResult) []planRecord {
	records := make([]planRecord, 0, len(result.Instructions))
	for _, instruction := range result.Instructions {
		records = append(records, planRecord{
			Classification: instruction.Classification.String(),
			FromDepot:      string(instruction.FromDepot),
			ToDepot:        string(instruction.ToDepot),
			Item:           string(instruction.Item),
			Quantity:       instruction.Quantity.String(),
		})
	}
	return records
}

// generateTextOutput creates human-readable text output on stdout
func generateTextOutput(result *dto.TransferResult, config Config) error {
	fmt.Printf("📊 Transfer Plan Summary\n")
	fmt.Printf("========================\n\n")

	fmt.Printf("Run ID: %s\n", result.RunID)
	fmt.Printf("Input Rows: %d\n", result.Summary.RowCount)
	fmt.Printf("Transfers: %d (intra-region: %d, cross-region: %d)\n",
		result.Summary.InstructionCount,
		result.Summary.IntraRegionCount,
		result.Summary.CrossRegionCount)
	fmt.Printf("Total Quantity Moved: %s\n", result.Summary.TotalQuantity)
	fmt.Printf("Unmet Need: %s\n", result.Summary.UnmetNeed)
	fmt.Printf("Plan Time: %v\n\n", config.PlanTime)

	if len(result.Instructions) > 0 {
		fmt.Printf("🚚 Transfer Instructions:\n")
		fmt.Printf("%-14s %-12s %-12s %-12s %-10s\n",
			"Type", "From Depot", "To Depot", "Item", "Quantity")
		fmt.Printf("%-14s %-12s %-12s %-12s %-10s\n",
			"--------------", "------------", "------------", "------------", "----------")

		for _, instruction := range result.Instructions {
			fmt.Printf("%-14s %-12s %-12s %-12s %-10s\n",
				instruction.Classification,
				instruction.FromDepot,
				instruction.ToDepot,
				instruction.Item,
				instruction.Quantity)
		}
		fmt.Println()
	}

	return nil
}

// generateJSONOutput writes the full result as a JSON document
func generateJSONOutput(result *dto.TransferResult, config Config) error {
	document := struct {
		RunID       string              `json:"run_id"`
		GeneratedAt time.Time           `json:"generated_at"`
		Summary     dto.TransferSummary `json:"summary"`
		Transfers   []planRecord        `json:"transfers"`
	}{
		RunID:       result.RunID,
		GeneratedAt: result.GeneratedAt,
		Summary:     result.Summary,
		Transfers:   planRecords(result),
	}

	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal transfer plan: %w", err)
	}

	path := filepath.Join(config.OutputDir, "transfer_plan.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if config.Verbose {
		fmt.Printf("📄 JSON output written to %s\n", path)
	}
	return nil
}

// generateCSVOutput writes the transfer list as a CSV table
func generateCSVOutput(result *dto.TransferResult, config Config) error {
	path := filepath.Join(config.OutputDir, "transfer_plan.csv")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"classification", "from_depot", "to_depot", "item", "quantity"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, record := range planRecords(result) {
		row := []string{record.Classification, record.FromDepot, record.ToDepot, record.Item, record.Quantity}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	if config.Verbose {
		fmt.Printf("📄 CSV output written to %s\n", path)
	}
	return nil
}

// generateXLSXOutput writes the transfer list as an Excel workbook
func generateXLSXOutput(result *dto.TransferResult, config Config) error {
	path := filepath.Join(config.OutputDir, "transfer_plan.xlsx")
	if err := xlsx.NewWriter().WritePlan(result, path); err != nil {
		return err
	}

	if config.Verbose {
		fmt.Printf("📄 Excel output written to %s\n", path)
	}
	return nil
}
