package matching

// Order location addressing.
//
// A resting order is addressed by the pair (price slot, queue slot): the index
// of the price level slot inside the order book array and the index of the
// order cell inside the circular queue of that price level. The pair is packed
// into a single uint32 key stored in the per-book location index, giving O(1)
// cancellation by order id. The packing requires both capacities to be powers
// of two and queueSlotBits to equal log2(MaxOrdersPerPriceLevel); both are
// compile-time constants, so a violation is a programming error, not a runtime
// failure.

// coalesceLocation packs a price slot and a queue slot into a single key.
// Requires 0 <= queueSlot < MaxOrdersPerPriceLevel.
func coalesceLocation(priceSlot, queueSlot int) uint32 {
	return uint32(priceSlot)<<queueSlotBits | uint32(queueSlot)
}

// locationPriceSlot extracts the price slot from a packed location key.
func locationPriceSlot(key uint32) int {
	return int(key>>queueSlotBits) & (MaxPriceLevels - 1)
}

// locationQueueSlot extracts the queue slot from a packed location key.
func locationQueueSlot(key uint32) int {
	return int(key) & (MaxOrdersPerPriceLevel - 1)
}

// moduloPow2 returns v modulo d for a power-of-two d.
func moduloPow2(v, d int) int {
	return v & (d - 1)
}
