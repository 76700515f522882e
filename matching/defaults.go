package matching

import "time"

const (
	// MaxPriceLevels specifies the amount of price level slots reserved in every
	// order book. Must be a power of two.
	MaxPriceLevels = 1 << 8

	// MaxOrdersPerPriceLevel specifies the capacity of the circular order queue
	// of a single price level. Must be a power of two.
	MaxOrdersPerPriceLevel = 1 << 15

	// queueSlotBits is the amount of low bits of a packed order location reserved
	// for the queue slot. Must equal log2(MaxOrdersPerPriceLevel).
	queueSlotBits = 15

	// defaultEventQueueSize specifies size of the queue of events which should be
	// performed by the single consumer goroutine of the engine.
	defaultEventQueueSize = 1024

	// defaultReservedOrderSlots specifies initial size of hashmap array storing
	// order locations by order id separately for each order book.
	defaultReservedOrderSlots = 1024

	// defaultResultCacheLimit specifies the ceiling of the processed-orders set.
	// Once exceeded both the processed set and the result cache are cleared in
	// bulk, so duplicate detection has a rolling amnesia window rather than true
	// LRU eviction.
	defaultResultCacheLimit = 10000

	// defaultMarketOrderWait specifies how long a synchronous market order
	// submission waits for its result before giving up with ErrTimeout.
	defaultMarketOrderWait = 2 * time.Second
)
