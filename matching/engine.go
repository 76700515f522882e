package matching

import (
	"sync"
	"time"

	"github.com/tidwall/hashmap"
)

// Engine owns the bid and ask order books and serializes all order-affecting
// events through a single consumer goroutine. Any number of producers may
// submit concurrently; exactly one goroutine drains the event queue and
// mutates book state, so events are applied in the exact order they were
// accepted into the queue and no lock guards the books themselves.
//
// Limit submissions are fire-and-forget, market submissions block until the
// consumer delivers a result or the wait bound elapses. Duplicate
// redeliveries of an already processed order id are answered from the result
// cache without touching the books.
type Engine struct {
	handler Handler

	// Bid/Ask order books, owned by the consumer goroutine while running
	bids *OrderBook
	asks *OrderBook

	// Serialized event stream
	chanEvents chan orderEvent

	// Idempotency state: processed order ids and their cached results. Both are
	// cleared in bulk once the ceiling is exceeded (rolling amnesia window, not
	// LRU — an intentional approximation).
	processed        *hashmap.Map[uint64, struct{}]
	results          *hashmap.Map[uint64, OrderResult]
	resultCacheLimit int

	// Synchronous submission wait bound
	marketOrderWait time.Duration

	// Synchronization stuff
	chanForcedStop chan struct{}
	wg             sync.WaitGroup
}

// NewEngine creates and returns new Engine instance.
func NewEngine(handler Handler) *Engine {
	allocator := NewAllocator()
	return &Engine{
		handler:          handler,
		bids:             NewOrderBook(OrderSideBuy, allocator),
		asks:             NewOrderBook(OrderSideSell, allocator),
		chanEvents:       make(chan orderEvent, defaultEventQueueSize),
		processed:        hashmap.New[uint64, struct{}](defaultResultCacheLimit),
		results:          hashmap.New[uint64, OrderResult](defaultResultCacheLimit),
		resultCacheLimit: defaultResultCacheLimit,
		marketOrderWait:  defaultMarketOrderWait,
		chanForcedStop:   make(chan struct{}),
	}
}

// Start starts the matching engine consumer goroutine.
func (e *Engine) Start() {
	e.wg.Add(1)
	go e.loop()
}

// Stop stops the matching engine. Pending events are drained before the
// consumer goroutine exits unless forced. Submissions after Stop are invalid.
func (e *Engine) Stop(forced bool) {
	close(e.chanEvents)
	if forced {
		close(e.chanForcedStop)
	}
	e.wg.Wait()
}

////////////////////////////////////////////////////////////////
// Engine common
////////////////////////////////////////////////////////////////

// OrderBook returns the order book of the given side.
// NOTE: not concurrency safe, inspect only while no events are in flight.
func (e *Engine) OrderBook(side OrderSide) *OrderBook {
	if side == OrderSideBuy {
		return e.bids
	}
	return e.asks
}

// oppositeOrderBook returns the order book the given side matches against.
func (e *Engine) oppositeOrderBook(side OrderSide) *OrderBook {
	if side == OrderSideBuy {
		return e.asks
	}
	return e.bids
}

// Orders returns total amount of currently resting orders.
func (e *Engine) Orders() int {
	return e.bids.Size() + e.asks.Size()
}

////////////////////////////////////////////////////////////////
// Orders management
////////////////////////////////////////////////////////////////

// SubmitLimitOrder submits a limit order asynchronously. The caller never
// waits for the effect to materialize in the book; placement failures reach
// the Handler's error channel only. Order ids are supplied by the caller and
// must be positive and monotonically increasing per order kind.
func (e *Engine) SubmitLimitOrder(id uint64, side OrderSide, price uint64, quantity int64) error {
	order := NewLimitOrder(id, side, price, quantity)
	if err := order.Validate(); err != nil {
		return err
	}
	e.chanEvents <- orderEvent{kind: eventSubmit, order: order}
	return nil
}

// SubmitMarketOrder submits a market order and blocks until the consumer
// delivers the processing result or the wait bound elapses, whichever comes
// first. A zero referencePrice anchors the order at the best opposite price
// at processing time. Market orders are never placed into the book, any
// unmatched remainder is discarded.
func (e *Engine) SubmitMarketOrder(id uint64, side OrderSide, quantity int64, referencePrice uint64) (OrderResult, error) {
	order := NewMarketOrder(id, side, referencePrice, quantity)
	if err := order.Validate(); err != nil {
		return OrderResult{}, err
	}

	response := make(chan OrderResult, 1)
	e.chanEvents <- orderEvent{kind: eventSubmit, order: order, response: response}

	select {
	case result := <-response:
		return result, nil
	case <-time.After(e.marketOrderWait):
		return OrderResult{}, ErrTimeout
	}
}

// CancelOrder cancels the order with the given id asynchronously. Cancelling
// an already matched, already cancelled or never existing order is a safe
// no-op. There is no cancellation of an event already dequeued.
func (e *Engine) CancelOrder(side OrderSide, orderID uint64) error {
	if !side.Valid() {
		return ErrInvalidOrderSide
	}
	if orderID == 0 {
		return ErrInvalidOrderID
	}
	e.chanEvents <- orderEvent{kind: eventCancel, side: side, orderID: orderID}
	return nil
}
