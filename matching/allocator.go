package matching

import (
	"sync"
)

// Allocator encapsulates allocation of price level queues using sync.Pool
// internally. A price level queue carries a large pre-allocated cell array, so
// price level churn must reuse released instances instead of reallocating.
type Allocator struct {
	priceLevels sync.Pool
}

// NewAllocator creates and returns new Allocator instance.
func NewAllocator() *Allocator {
	a := new(Allocator)
	a.priceLevels = sync.Pool{New: func() any {
		return NewPriceLevelQueue()
	}}
	return a
}

// GetPriceLevel allocates a PriceLevelQueue instance bound to the given price.
func (a *Allocator) GetPriceLevel(price uint64) *PriceLevelQueue {
	pl := a.priceLevels.Get().(*PriceLevelQueue)
	pl.Reset(price)
	return pl
}

// PutPriceLevel releases a PriceLevelQueue instance.
func (a *Allocator) PutPriceLevel(priceLevel *PriceLevelQueue) {
	a.priceLevels.Put(priceLevel)
}
