package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vsinha/transferplan/pkg/application/dto"
)

// Writer renders a transfer plan to an Excel workbook, the download format of
// the planning workflow this tool replaces
type Writer struct{}

// NewWriter creates a new Excel writer
func NewWriter() *Writer {
	return &Writer{}
}

// planHeader is the column layout of the generated transfer list
var planHeader = []string{"classification", "from_depot", "to_depot", "item", "quantity"}

// WritePlan writes the transfer instructions to filename as a single-sheet
// workbook, one instruction per row in applied order
func (w *Writer) WritePlan(result *dto.TransferResult, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for i, name := range planHeader {
		cellName, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cellName, name); err != nil {
			return fmt.Errorf("failed to write header cell %s: %w", cellName, err)
		}
	}

	for i, instruction := range result.Instructions {
		values := []interface{}{
			instruction.Classification.String(),
			string(instruction.FromDepot),
			string(instruction.ToDepot),
			string(instruction.Item),
			instruction.Quantity.InexactFloat64(),
		}

		for j, value := range values {
			cellName, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cellName, value); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cellName, err)
			}
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", filename, err)
	}

	return nil
}
