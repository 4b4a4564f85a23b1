package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/transferplan/pkg/domain/entities"
)

// TransferResult contains the complete output of an allocation run
type TransferResult struct {
	RunID        string
	GeneratedAt  time.Time
	Instructions []entities.TransferInstruction
	Summary      TransferSummary
}

// TransferSummary aggregates a run for reporting
type TransferSummary struct {
	RowCount         int
	InstructionCount int
	IntraRegionCount int
	CrossRegionCount int
	TotalQuantity    decimal.Decimal
	UnmetNeed        decimal.Decimal
}
