package matching

// orderCell is a single cell of the circular order queue of a price level.
// A non-positive id marks a dead cell (cancelled or fully matched).
type orderCell struct {
	id       int64
	quantity int64
}

// PriceLevelQueue holds all orders resting at one price in a fixed-capacity
// circular buffer, preserving strict arrival order. Cancellation is lazy: a
// cell is marked dead in place and the head of the queue is advanced past dead
// cells instead of shifting memory. openOrderCount and openQuantity are
// maintained incrementally and always equal the sums over live cells.
// NOTE: Not thread-safe.
type PriceLevelQueue struct {
	price uint64
	cells []orderCell

	// start and end delimit the oldest and newest occupied cell (modulo the
	// capacity); both are -1 while the queue holds no orders at all.
	start int
	end   int

	openOrderCount int
	openQuantity   int64
}

// NewPriceLevelQueue creates and returns new PriceLevelQueue instance.
// The cell array is allocated once and reused for the whole lifetime of the
// queue, which is why instances are pooled by the Allocator.
func NewPriceLevelQueue() *PriceLevelQueue {
	return &PriceLevelQueue{
		cells: make([]orderCell, MaxOrdersPerPriceLevel),
		start: -1,
		end:   -1,
	}
}

////////////////////////////////////////////////////////////////
// Getters
////////////////////////////////////////////////////////////////

// Price returns the price all orders of the queue rest at.
func (pl *PriceLevelQueue) Price() uint64 {
	return pl.price
}

// OpenOrderCount returns the amount of live orders in the queue.
func (pl *PriceLevelQueue) OpenOrderCount() int {
	return pl.openOrderCount
}

// OpenQuantity returns the total pending quantity of all live orders.
func (pl *PriceLevelQueue) OpenQuantity() int64 {
	return pl.openQuantity
}

// IsEmpty returns true if the queue holds no live orders.
func (pl *PriceLevelQueue) IsEmpty() bool {
	return pl.openOrderCount == 0
}

////////////////////////////////////////////////////////////////
// Operations
////////////////////////////////////////////////////////////////

// Reset binds the queue to the given price. Must be called on an empty queue
// only, right after taking the instance from the allocator.
func (pl *PriceLevelQueue) Reset(price uint64) {
	pl.price = price
	pl.start = -1
	pl.end = -1
	pl.openOrderCount = 0
	pl.openQuantity = 0
}

// Place appends an order to the tail of the queue and returns the queue slot
// the order occupies. Fails with ErrPriceLevelCapacity if the circular buffer
// has no free cell left; dead cells between the head and the tail still occupy
// their slots until the head passes them.
func (pl *PriceLevelQueue) Place(orderID uint64, quantity int64) (int, error) {
	slot := moduloPow2(pl.end+1, MaxOrdersPerPriceLevel)
	if slot == pl.start {
		return 0, ErrPriceLevelCapacity
	}
	pl.cells[slot] = orderCell{id: int64(orderID), quantity: quantity}
	pl.end = slot
	if pl.start == -1 {
		pl.start = slot
	}
	pl.openOrderCount++
	pl.openQuantity += quantity
	return slot, nil
}

// Cancel removes the order occupying the given queue slot. Cancelling an
// already dead cell is a no-op, so the operation is idempotent. After the cell
// is invalidated the head of the queue is advanced past any dead leading
// cells, bounding the cost by the number of already invalidated cells rather
// than the queue length.
func (pl *PriceLevelQueue) Cancel(queueSlot int) {
	if pl.cells[queueSlot].id <= 0 {
		return
	}
	pl.invalidate(queueSlot)
	pl.advanceStart()
}

// Match matches the active order against the queue in strict arrival order.
// One trade is emitted per consumed passive cell and appended to trades. Every
// passive order filled to zero is invalidated in place and reported through
// the filled callback so the caller can drop its location index entry. The
// head of the queue is left at the scan cursor.
func (pl *PriceLevelQueue) Match(active *Order, trades []Trade, filled func(orderID uint64)) ([]Trade, error) {
	if pl.openOrderCount == 0 {
		return trades, nil
	}

	cursor := pl.start
	for pl.openOrderCount > 0 && !active.IsCompleted() {
		cell := &pl.cells[cursor]

		// Skip dead cells, compacting the head as the cursor advances
		if cell.id <= 0 {
			cursor = moduloPow2(cursor+1, MaxOrdersPerPriceLevel)
			pl.start = cursor
			continue
		}

		tradeQuantity := Min(active.RestQuantity(), cell.quantity)
		trades = append(trades, newTrade(active.ID(), uint64(cell.id), pl.price, tradeQuantity))

		if err := active.Fill(tradeQuantity); err != nil {
			pl.start = cursor
			return trades, err
		}
		cell.quantity -= tradeQuantity
		pl.openQuantity -= tradeQuantity

		if cell.quantity == 0 {
			passiveOrderID := uint64(cell.id)
			pl.invalidate(cursor)
			if filled != nil {
				filled(passiveOrderID)
			}
		}

		if active.IsCompleted() {
			break
		}
		cursor = moduloPow2(cursor+1, MaxOrdersPerPriceLevel)
	}
	pl.start = cursor

	return trades, nil
}

////////////////////////////////////////////////////////////////
// Internal helpers
////////////////////////////////////////////////////////////////

// invalidate marks the cell dead and updates the incremental counters.
// The head is not advanced here, compaction happens in Cancel and in the
// Match scan.
func (pl *PriceLevelQueue) invalidate(slot int) {
	pl.openQuantity -= pl.cells[slot].quantity
	pl.openOrderCount--
	pl.cells[slot] = orderCell{id: -1, quantity: -1}
}

// advanceStart moves the head of the queue forward to the oldest live cell,
// or resets the queue to the empty state when no live cell is left.
func (pl *PriceLevelQueue) advanceStart() {
	if pl.openOrderCount == 0 {
		pl.start = -1
		pl.end = -1
		return
	}
	for pl.cells[pl.start].id <= 0 {
		pl.start = moduloPow2(pl.start+1, MaxOrdersPerPriceLevel)
	}
}

// orderAt returns the id stored in the given cell, non-positive for dead
// cells. Used by the order book to validate location index entries.
func (pl *PriceLevelQueue) orderAt(queueSlot int) int64 {
	return pl.cells[queueSlot].id
}
