package matching_test

import (
	"sync"

	matching "github.com/fluxtrade/flux-matching-engine/matching"
)

// tradeRecorder is a Handler keeping every trade for later assertions, the
// way a real trade sink would persist them. Handler methods run on the engine
// consumer goroutine; tests read the recorder only after Stop, but the mutex
// keeps it safe for mid-run inspection too.
type tradeRecorder struct {
	mu     sync.Mutex
	trades []matching.Trade
	errors []error
}

func (r *tradeRecorder) OnTrades(trades []matching.Trade) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trades = append(r.trades, trades...)
}

func (r *tradeRecorder) OnPlaceOrder(order *matching.Order) {}

func (r *tradeRecorder) OnCancelOrder(side matching.OrderSide, orderID uint64) {}

func (r *tradeRecorder) OnError(orderID uint64, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, err)
}

func (r *tradeRecorder) Trades() []matching.Trade {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]matching.Trade(nil), r.trades...)
}

// TradeSumQuantityByActiveOrderID returns the total traded quantity of the
// given aggressor order.
func (r *tradeRecorder) TradeSumQuantityByActiveOrderID(orderID uint64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum int64
	for _, trade := range r.trades {
		if trade.ActiveOrderID == orderID {
			sum += trade.Quantity
		}
	}
	return sum
}
