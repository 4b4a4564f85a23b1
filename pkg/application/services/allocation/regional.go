package allocation

import (
	"github.com/vsinha/transferplan/pkg/domain/entities"
)

// RegionalAllocator runs stage one: for each administrative region, receivers
// are matched only against senders inside that region. Cross-region capacity
// is invisible to this stage even when it could satisfy need; regional
// self-sufficiency comes first.
type RegionalAllocator struct{}

// NewRegionalAllocator creates a new regional allocator
func NewRegionalAllocator() *RegionalAllocator {
	return &RegionalAllocator{}
}

// Run executes the intra-region matching pass against the shared ledger
func (a *RegionalAllocator) Run(ledger *Ledger, recorder *Recorder, plan *networkPlan) {
	for _, region := range plan.regions {
		for _, item := range plan.regionItems[region] {
			matchItem(ledger, recorder, item, plan.regionItemDepots[region][item], entities.IntraRegion)
		}
	}
}
