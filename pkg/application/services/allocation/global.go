package allocation

import (
	"github.com/vsinha/transferplan/pkg/domain/entities"
)

// GlobalAllocator runs stage two: whatever need and availability the regional
// pass left behind is matched across the entire depot population, one pass per
// item, ignoring regions. Depots fully satisfied in stage one contribute
// nothing here because their remaining need is already zero.
type GlobalAllocator struct{}

// NewGlobalAllocator creates a new global allocator
func NewGlobalAllocator() *GlobalAllocator {
	return &GlobalAllocator{}
}

// Run executes the cross-region matching pass against the shared ledger
func (a *GlobalAllocator) Run(ledger *Ledger, recorder *Recorder, plan *networkPlan) {
	for _, item := range plan.allItems {
		matchItem(ledger, recorder, item, plan.allDepots, entities.CrossRegion)
	}
}
