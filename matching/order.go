package matching

// Order contains information about a single order.
// An order is an instruction to buy or sell at a trading venue. Identity
// (id, side, type, price) is immutable once the order is created; only the
// executed quantity counter changes while the order is being matched.
// Order ids must be positive: the price level queue uses non-positive ids to
// mark dead cells.
type Order struct {
	id        uint64
	orderType OrderType
	side      OrderSide

	price    uint64
	quantity int64

	executedQuantity int64
	completed        bool
}

// NewLimitOrder creates and returns new limit Order instance.
func NewLimitOrder(id uint64, side OrderSide, price uint64, quantity int64) Order {
	return Order{
		id:        id,
		orderType: OrderTypeLimit,
		side:      side,
		price:     price,
		quantity:  quantity,
	}
}

// NewMarketOrder creates and returns new market Order instance.
// The price acts as a reference price capping (buy) or flooring (sell) the
// acceptable execution prices; zero means "anchor at the best opposite price
// when processed".
func NewMarketOrder(id uint64, side OrderSide, price uint64, quantity int64) Order {
	return Order{
		id:        id,
		orderType: OrderTypeMarket,
		side:      side,
		price:     price,
		quantity:  quantity,
	}
}

// ID returns the order id.
func (o *Order) ID() uint64 {
	return o.id
}

// Type returns the order type.
func (o *Order) Type() OrderType {
	return o.orderType
}

// IsLimit returns true if limit order.
func (o *Order) IsLimit() bool {
	return o.orderType == OrderTypeLimit
}

// IsMarket returns true if market order.
func (o *Order) IsMarket() bool {
	return o.orderType == OrderTypeMarket
}

// Side returns the side of the order.
func (o *Order) Side() OrderSide {
	return o.side
}

// IsBuy returns true if buy order.
func (o *Order) IsBuy() bool {
	return o.side == OrderSideBuy
}

// Price returns the order price (limit price or market reference price).
func (o *Order) Price() uint64 {
	return o.price
}

// Quantity returns the total order quantity.
func (o *Order) Quantity() int64 {
	return o.quantity
}

// ExecutedQuantity returns the already matched quantity of the order.
func (o *Order) ExecutedQuantity() int64 {
	return o.executedQuantity
}

// RestQuantity returns the quantity of the order still pending to be matched.
func (o *Order) RestQuantity() int64 {
	return o.quantity - o.executedQuantity
}

// IsCompleted returns true once the order is fully matched.
// The flag is monotonic, it never resets back to false.
func (o *Order) IsCompleted() bool {
	return o.completed
}

// Fill increases the executed quantity of the order by the given amount.
// Filling beyond the total order quantity fails with ErrOrderOverfill and
// leaves the order unchanged.
func (o *Order) Fill(quantity int64) error {
	if o.executedQuantity+quantity > o.quantity {
		return ErrOrderOverfill
	}
	o.executedQuantity += quantity
	if o.executedQuantity == o.quantity {
		o.completed = true
	}
	return nil
}

// Validate checks the order parameters.
func (o *Order) Validate() error {
	if o.id == 0 {
		return ErrInvalidOrderID
	}
	if !o.side.Valid() {
		return ErrInvalidOrderSide
	}
	if o.quantity <= 0 {
		return ErrInvalidOrderQuantity
	}
	switch o.orderType {
	case OrderTypeLimit:
		if o.price == 0 {
			return ErrInvalidOrderPrice
		}
	case OrderTypeMarket:
	default:
		return ErrInvalidOrderType
	}
	return nil
}
