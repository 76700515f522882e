package matching

import "time"

// Trade is an immutable record of a single match between an aggressor order
// and a passive resting order. Trades are produced only by the matching
// routine; persisting them is up to the Handler implementation.
type Trade struct {
	ActiveOrderID  uint64
	PassiveOrderID uint64
	Price          uint64
	Quantity       int64
	Timestamp      int64 // unix nanoseconds
}

func newTrade(activeOrderID, passiveOrderID uint64, price uint64, quantity int64) Trade {
	return Trade{
		ActiveOrderID:  activeOrderID,
		PassiveOrderID: passiveOrderID,
		Price:          price,
		Quantity:       quantity,
		Timestamp:      time.Now().UnixNano(),
	}
}

// QuoteQuantity returns the traded notional (price multiplied by quantity).
// The multiplication is performed in 128 bits so it cannot overflow.
func (t Trade) QuoteQuantity() Uint {
	return NewUint(t.Price).Mul64(uint64(t.Quantity))
}
