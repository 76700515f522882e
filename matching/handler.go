package matching

//go:generate mockgen -destination=mocks/interfaces.go -package=mockmatching . Handler
type Handler interface {

	// Trade sink, called exactly once per processed submission event with zero
	// or more trades. Append-only, no acknowledgment is expected.
	OnTrades(trades []Trade)

	// Orders handlers
	OnPlaceOrder(order *Order)
	OnCancelOrder(side OrderSide, orderID uint64)

	// Errors handler, the only feedback channel for failed asynchronous events.
	OnError(orderID uint64, err error)
}
