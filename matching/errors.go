package matching

import (
	"errors"
)

// Errors used by the package.
var (
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidOrderSide     = errors.New("invalid order side")
	ErrInvalidOrderType     = errors.New("invalid order type")
	ErrInvalidOrderPrice    = errors.New("invalid order price")
	ErrInvalidOrderQuantity = errors.New("invalid order quantity")

	// ErrPriceLevelCapacity is returned when the circular order queue of a price
	// level has no free cell left for one more resting order.
	ErrPriceLevelCapacity = errors.New("price level order queue is full")

	// ErrPriceLevelsFull is returned when an order book has no free price level
	// slot left for one more distinct price.
	ErrPriceLevelsFull = errors.New("order book price level slots are full")

	// ErrOrderOverfill is returned when filling an order would exceed its total
	// quantity. It indicates corrupted book state and is never clamped silently.
	ErrOrderOverfill = errors.New("order fill exceeds order quantity")

	// ErrEmptyOrderBook is returned when the best price of an empty order book
	// is requested.
	ErrEmptyOrderBook = errors.New("order book is empty")

	// ErrTimeout is returned when a synchronous submission exceeded its wait
	// bound. The consumer may still complete the event afterwards, the result is
	// simply not observed by the caller.
	ErrTimeout = errors.New("timed out waiting for order result")

	// ErrOrderAlreadyProcessed is reported for a redelivered order id whose
	// first processing failed before a result could be cached.
	ErrOrderAlreadyProcessed = errors.New("order is already processed")
)
