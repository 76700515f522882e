package matching

import (
	"fmt"

	"github.com/tidwall/hashmap"
)

// eventKind discriminates the events flowing through the engine queue.
type eventKind uint8

const (
	eventSubmit eventKind = iota + 1
	eventCancel
)

// orderEvent is a single order-affecting event accepted into the serialized
// queue. For submissions the order travels by value; a non-nil response
// channel marks a synchronous submission and is written exactly once by the
// consumer goroutine.
type orderEvent struct {
	kind  eventKind
	order Order

	// Cancellation target
	side    OrderSide
	orderID uint64

	// Synchronous result delivery, nil for fire-and-forget events
	response chan OrderResult
}

////////////////////////////////////////////////////////////////
// Consumer loop
////////////////////////////////////////////////////////////////

// loop is the single consumer goroutine draining the event queue. All order
// book mutations happen here, which is the core correctness mechanism: two
// orders accepted into the queue have their relative application order fixed
// by queue position, and no concurrent writer to book state can exist.
func (e *Engine) loop() {
	defer e.wg.Done()

	for {
		select {
		case event, ok := <-e.chanEvents:
			if !ok {
				return
			}
			e.process(event)
		case <-e.chanForcedStop:
			return
		}
	}
}

// process applies a single dequeued event to the books.
func (e *Engine) process(event orderEvent) {
	if event.kind == eventCancel {
		// Cancels bypass the idempotency cache: replaying one is a no-op anyway
		e.OrderBook(event.side).Cancel(event.orderID)
		e.handler.OnCancelOrder(event.side, event.orderID)
		return
	}

	orderID := event.order.ID()

	// Answer duplicate redeliveries from the result cache without reprocessing.
	// A processed id without a cached result means the first processing died
	// between marking and caching; the event stays terminal either way.
	if _, done := e.processed.Get(orderID); done {
		if cached, ok := e.results.Get(orderID); ok {
			event.deliver(cached)
			return
		}
		e.handler.OnError(orderID, ErrOrderAlreadyProcessed)
		event.deliver(OrderResult{OrderID: orderID, Success: false, Message: ErrOrderAlreadyProcessed.Error()})
		return
	}

	// Mark the id processed before matching so a failure mid-match still
	// prevents reprocessing
	e.processed.Set(orderID, struct{}{})
	if e.processed.Len() > e.resultCacheLimit {
		e.clearResultCache()
		e.processed.Set(orderID, struct{}{})
	}

	order := event.order
	err := e.anchorMarketOrder(&order)

	var trades []Trade
	if err == nil {
		trades, err = e.oppositeOrderBook(order.Side()).Match(&order)
	}

	// Record trades before attempting placement: the fills already happened
	// even if resting the remainder fails afterwards
	e.handler.OnTrades(trades)

	// The remainder of a limit order rests in the book; market orders are never
	// queued regardless of fill state
	if err == nil && !order.IsCompleted() && order.IsLimit() {
		if err = e.book(order.Side()).Place(&order); err == nil {
			e.handler.OnPlaceOrder(&order)
		}
	}

	var result OrderResult
	if err != nil {
		e.handler.OnError(orderID, err)
		result = OrderResult{OrderID: orderID, Success: false, Message: err.Error()}
	} else {
		result = OrderResult{OrderID: orderID, Success: true, Message: fmt.Sprintf("matched %d trades", len(trades))}
	}

	e.results.Set(orderID, result)
	event.deliver(result)
}

// anchorMarketOrder resolves a zero reference price of a market order to the
// best opposite price at processing time. A zero reference against an empty
// opposite book fails the event.
func (e *Engine) anchorMarketOrder(order *Order) error {
	if !order.IsMarket() || order.Price() != 0 {
		return nil
	}
	bestPrice, err := e.oppositeOrderBook(order.Side()).BestPrice()
	if err != nil {
		return err
	}
	order.price = bestPrice
	return nil
}

// book is a shorthand for the same-side order book.
func (e *Engine) book(side OrderSide) *OrderBook {
	return e.OrderBook(side)
}

// clearResultCache drops the whole processed set and result cache in one step.
// The amnesia window is an intentional, documented approximation of eviction.
func (e *Engine) clearResultCache() {
	e.processed = hashmap.New[uint64, struct{}](e.resultCacheLimit)
	e.results = hashmap.New[uint64, OrderResult](e.resultCacheLimit)
}

// deliver completes a synchronous submission exactly once. Fire-and-forget
// events have no observer, their result is only cached.
func (ev orderEvent) deliver(result OrderResult) {
	if ev.response != nil {
		ev.response <- result
	}
}
