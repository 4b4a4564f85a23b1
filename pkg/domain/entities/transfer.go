package entities

import (
	"github.com/shopspring/decimal"
)

// TransferClassification distinguishes transfers matched within a region from
// transfers that had to cross region boundaries
type TransferClassification int

const (
	IntraRegion TransferClassification = iota
	CrossRegion
)

// String method for TransferClassification enum
func (c TransferClassification) String() string {
	switch c {
	case IntraRegion:
		return "intra-region"
	case CrossRegion:
		return "cross-region"
	default:
		return "Unknown"
	}
}

// TransferInstruction is one directive in the transfer plan: move Quantity of
// Item from FromDepot to ToDepot. Instructions are immutable once recorded and
// always carry a strictly positive quantity.
type TransferInstruction struct {
	Classification TransferClassification
	FromDepot      DepotCode
	ToDepot        DepotCode
	Item           ItemCode
	Quantity       decimal.Decimal
}
