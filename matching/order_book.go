package matching

import (
	"github.com/tidwall/btree"
	"github.com/tidwall/hashmap"
)

// priceSlotEntry binds a price to the order book slot holding its price level
// queue. Entries are keyed by price only: a price is bound to at most one slot
// at a time.
type priceSlotEntry struct {
	price uint64
	slot  int
}

// OrderBook stores all orders resting on one side of the market in a fixed
// array of price level slots. A side-ordered B-tree maps prices to slots so
// the best price is always the tree minimum: descending for the bid book,
// ascending for the ask book. The location index maps order ids to packed
// (price slot, queue slot) keys for O(1) cancellation.
// NOTE: Not thread-safe, owned exclusively by the engine consumer goroutine.
type OrderBook struct {
	side      OrderSide
	allocator *Allocator

	// Price level slots, nil while free. A slot is free iff its queue is empty.
	slots [MaxPriceLevels]*PriceLevelQueue

	// Price levels ordered by side priority (best price first).
	levels *btree.BTreeG[priceSlotEntry]

	// Order locations by order id.
	locations *hashmap.Map[uint64, uint32]

	// Next slot to probe when allocating a free price level slot.
	probeFrom int
}

// NewOrderBook creates and returns new OrderBook instance for the given side.
func NewOrderBook(side OrderSide, allocator *Allocator) *OrderBook {
	// Best price first: highest bid, lowest ask
	less := func(a, b priceSlotEntry) bool { return a.price < b.price }
	if side == OrderSideBuy {
		less = func(a, b priceSlotEntry) bool { return a.price > b.price }
	}
	return &OrderBook{
		side:      side,
		allocator: allocator,
		levels:    btree.NewBTreeG[priceSlotEntry](less),
		locations: hashmap.New[uint64, uint32](defaultReservedOrderSlots),
	}
}

////////////////////////////////////////////////////////////////
// Order book getters
////////////////////////////////////////////////////////////////

// Side returns the side of the order book.
func (ob *OrderBook) Side() OrderSide {
	return ob.side
}

// Size returns the amount of orders currently resting in the order book.
func (ob *OrderBook) Size() int {
	return ob.locations.Len()
}

// IsEmpty returns true if the order book has no resting orders.
func (ob *OrderBook) IsEmpty() bool {
	return ob.locations.Len() == 0
}

// PriceLevels returns the amount of occupied price levels.
func (ob *OrderBook) PriceLevels() int {
	return ob.levels.Len()
}

// BestPrice returns the most marketable resting price of the book: the
// highest bid or the lowest ask. Fails with ErrEmptyOrderBook if the book
// holds no orders.
func (ob *OrderBook) BestPrice() (uint64, error) {
	best, ok := ob.levels.Min()
	if !ok {
		return 0, ErrEmptyOrderBook
	}
	return best.price, nil
}

// Volume returns the total pending quantity resting in the order book.
func (ob *OrderBook) Volume() int64 {
	var volume int64
	ob.levels.Scan(func(entry priceSlotEntry) bool {
		volume += ob.slots[entry.slot].OpenQuantity()
		return true
	})
	return volume
}

// QuoteVolume returns the total resting notional (sum of price multiplied by
// pending quantity over all price levels) computed in 128 bits.
func (ob *OrderBook) QuoteVolume() Uint {
	volume := NewZeroUint()
	ob.levels.Scan(func(entry priceSlotEntry) bool {
		level := ob.slots[entry.slot]
		volume = volume.Add(NewUint(level.Price()).Mul64(uint64(level.OpenQuantity())))
		return true
	})
	return volume
}

////////////////////////////////////////////////////////////////
// Matching
////////////////////////////////////////////////////////////////

// Match matches the incoming order of the opposite side against the resting
// liquidity of the book under strict price-then-time priority and returns the
// emitted trades. An order of the book's own side is never matched here and
// yields no trades. Exhausted price levels are unbound and their slots freed.
func (ob *OrderBook) Match(order *Order) ([]Trade, error) {
	if order.Side() == ob.side {
		return nil, nil
	}

	var trades []Trade
	for !order.IsCompleted() {
		best, ok := ob.levels.Min()
		if !ok || !ob.marketable(order, best.price) {
			break
		}

		level := ob.slots[best.slot]
		var err error
		trades, err = level.Match(order, trades, func(passiveOrderID uint64) {
			ob.locations.Delete(passiveOrderID)
		})
		if level.IsEmpty() {
			ob.releaseLevel(best)
		}
		if err != nil {
			return trades, err
		}
	}
	return trades, nil
}

// marketable reports whether the given resting price satisfies the price
// condition of the aggressor order.
func (ob *OrderBook) marketable(order *Order, restingPrice uint64) bool {
	if ob.side == OrderSideSell {
		// Ask book, buy aggressor: the ask must not exceed the buy price
		return restingPrice <= order.Price()
	}
	// Bid book, sell aggressor: the bid must not undercut the sell price
	return restingPrice >= order.Price()
}

////////////////////////////////////////////////////////////////
// Orders management
////////////////////////////////////////////////////////////////

// Place appends a not yet completed order of the book's own side to the price
// level of its price, binding a free slot to the price first if needed, and
// records the order location in the index. Fails with ErrPriceLevelsFull when
// no free slot exists and with ErrPriceLevelCapacity when the price level
// queue is full.
func (ob *OrderBook) Place(order *Order) error {
	var level *PriceLevelQueue
	var slot int

	entry, bound := ob.levels.Get(priceSlotEntry{price: order.Price()})
	if bound {
		slot = entry.slot
		level = ob.slots[slot]
	} else {
		var err error
		slot, err = ob.allocateSlot()
		if err != nil {
			return err
		}
		level = ob.allocator.GetPriceLevel(order.Price())
		ob.slots[slot] = level
		ob.levels.Set(priceSlotEntry{price: order.Price(), slot: slot})
	}

	queueSlot, err := level.Place(order.ID(), order.RestQuantity())
	if err != nil {
		if level.IsEmpty() {
			ob.releaseLevel(priceSlotEntry{price: order.Price(), slot: slot})
		}
		return err
	}

	ob.locations.Set(order.ID(), coalesceLocation(slot, queueSlot))
	return nil
}

// Cancel removes the order with the given id from the book. Unknown ids are
// ignored, so cancelling an already matched, already cancelled or never placed
// order is a safe no-op.
func (ob *OrderBook) Cancel(orderID uint64) {
	key, ok := ob.locations.Get(orderID)
	if !ok {
		return
	}
	ob.locations.Delete(orderID)

	slot := locationPriceSlot(key)
	level := ob.slots[slot]
	if level == nil {
		return
	}
	level.Cancel(locationQueueSlot(key))
	if level.IsEmpty() {
		ob.releaseLevel(priceSlotEntry{price: level.Price(), slot: slot})
	}
}

////////////////////////////////////////////////////////////////
// Internal helpers
////////////////////////////////////////////////////////////////

// allocateSlot probes for a free price level slot scanning forward from the
// slot after the last allocated one, wrapping around once. Fails with
// ErrPriceLevelsFull if a whole scan finds no free slot.
func (ob *OrderBook) allocateSlot() (int, error) {
	for i := 0; i < MaxPriceLevels; i++ {
		slot := moduloPow2(ob.probeFrom+i, MaxPriceLevels)
		if ob.slots[slot] == nil {
			ob.probeFrom = moduloPow2(slot+1, MaxPriceLevels)
			return slot, nil
		}
	}
	return 0, ErrPriceLevelsFull
}

// releaseLevel unbinds an exhausted price level from its price, frees the slot
// and returns the queue to the allocator.
func (ob *OrderBook) releaseLevel(entry priceSlotEntry) {
	ob.levels.Delete(priceSlotEntry{price: entry.price})
	ob.allocator.PutPriceLevel(ob.slots[entry.slot])
	ob.slots[entry.slot] = nil
}
