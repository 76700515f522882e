package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/fluxtrade/flux-matching-engine/matching"
)

// TradeLogger is a matching.Handler recording trades through a structured
// logger and keeping running statistics. Handler methods are invoked from the
// engine consumer goroutine while producers read nothing but the atomic
// counters, so plain atomics are enough.
type TradeLogger struct {
	log *zap.Logger

	trades         uint64
	tradedQuantity uint64
	placedOrders   uint64
	cancelEvents   uint64
	errors         uint64
}

func NewTradeLogger(log *zap.Logger) *TradeLogger {
	return &TradeLogger{log: log}
}

func (h *TradeLogger) OnTrades(trades []matching.Trade) {
	for _, trade := range trades {
		atomic.AddUint64(&h.trades, 1)
		atomic.AddUint64(&h.tradedQuantity, uint64(trade.Quantity))
		h.log.Debug("trade",
			zap.Uint64("active_order_id", trade.ActiveOrderID),
			zap.Uint64("passive_order_id", trade.PassiveOrderID),
			zap.Uint64("price", trade.Price),
			zap.Int64("quantity", trade.Quantity),
			zap.String("notional", trade.QuoteQuantity().String()),
		)
	}
}

func (h *TradeLogger) OnPlaceOrder(order *matching.Order) {
	atomic.AddUint64(&h.placedOrders, 1)
	h.log.Debug("order placed",
		zap.Uint64("order_id", order.ID()),
		zap.Stringer("side", order.Side()),
		zap.Uint64("price", order.Price()),
		zap.Int64("rest_quantity", order.RestQuantity()),
	)
}

func (h *TradeLogger) OnCancelOrder(side matching.OrderSide, orderID uint64) {
	atomic.AddUint64(&h.cancelEvents, 1)
	h.log.Debug("order cancelled",
		zap.Stringer("side", side),
		zap.Uint64("order_id", orderID),
	)
}

func (h *TradeLogger) OnError(orderID uint64, err error) {
	atomic.AddUint64(&h.errors, 1)
	h.log.Warn("order processing failed",
		zap.Uint64("order_id", orderID),
		zap.Error(err),
	)
}

// PrintStatistics prints the accumulated counters.
func (h *TradeLogger) PrintStatistics(elapsed time.Duration) {
	trades := atomic.LoadUint64(&h.trades)
	fmt.Printf("Trades executed:  %d\n", trades)
	fmt.Printf("Traded quantity:  %d\n", atomic.LoadUint64(&h.tradedQuantity))
	fmt.Printf("Orders placed:    %d\n", atomic.LoadUint64(&h.placedOrders))
	fmt.Printf("Cancel events:    %d\n", atomic.LoadUint64(&h.cancelEvents))
	fmt.Printf("Errors:           %d\n", atomic.LoadUint64(&h.errors))
	fmt.Printf("Trades/sec:       %.0f\n", float64(trades)/elapsed.Seconds())
}
