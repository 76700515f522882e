package matching

// OrderType is an enumeration of possible order types.
type OrderType uint8

const (
	// OrderTypeLimit represents a limit order which rests in the order book
	// until matched or cancelled.
	OrderTypeLimit OrderType = iota + 1
	// OrderTypeMarket represents a market order which is matched immediately
	// and never placed into the order book.
	OrderTypeMarket
)

// String implements the fmt.Stringer interface.
func (t OrderType) String() string {
	switch t {
	case OrderTypeLimit:
		return "limit"
	case OrderTypeMarket:
		return "market"
	default:
		return "unknown"
	}
}
