package main

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/fluxtrade/flux-matching-engine/matching"
)

const (
	producers        = 4
	limitOrdersEach  = 25000
	marketOrders     = 100
	priceBandLow     = 9900
	priceBandHigh    = 10100
	maxOrderQuantity = 50
	cancelEveryNth   = 10
)

// Order ids are monotonically increasing per order kind, generated here
// because the core never generates ids itself.
var (
	limitOrderID  uint64 = 100000000
	marketOrderID uint64 = 0
)

var _ matching.Handler = &TradeLogger{}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync() //nolint:errcheck

	// Create and start the matching engine
	handler := NewTradeLogger(logger)
	engine := matching.NewEngine(handler)

	timeStart := time.Now()
	engine.Start()

	// Run concurrent producers submitting limit orders and cancels
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for i := 0; i < limitOrdersEach; i++ {
				id := atomic.AddUint64(&limitOrderID, 1)
				side := matching.OrderSideBuy
				if rng.Intn(2) == 0 {
					side = matching.OrderSideSell
				}
				price := uint64(priceBandLow + rng.Intn(priceBandHigh-priceBandLow+1))
				quantity := int64(1 + rng.Intn(maxOrderQuantity))
				if err := engine.SubmitLimitOrder(id, side, price, quantity); err != nil {
					logger.Warn("limit order rejected", zap.Uint64("order_id", id), zap.Error(err))
					continue
				}
				if i%cancelEveryNth == 0 {
					if err := engine.CancelOrder(side, id); err != nil {
						logger.Warn("cancel rejected", zap.Uint64("order_id", id), zap.Error(err))
					}
				}
			}
		}(int64(p) + 1)
	}
	wg.Wait()

	// Fire synchronous market orders against the standing liquidity
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < marketOrders; i++ {
		id := atomic.AddUint64(&marketOrderID, 1)
		side := matching.OrderSideBuy
		if rng.Intn(2) == 0 {
			side = matching.OrderSideSell
		}
		quantity := int64(1 + rng.Intn(maxOrderQuantity))
		result, err := engine.SubmitMarketOrder(id, side, quantity, 0)
		if err != nil {
			logger.Warn("market order failed", zap.Uint64("order_id", id), zap.Error(err))
			continue
		}
		logger.Info("market order result",
			zap.Uint64("order_id", result.OrderID),
			zap.Bool("success", result.Success),
			zap.String("message", result.Message),
		)
	}

	// Stop the matching engine draining all pending events
	engine.Stop(false)
	timeElapsed := time.Since(timeStart)

	// Print statistics
	fmt.Println()
	handler.PrintStatistics(timeElapsed)
	fmt.Println()
	fmt.Printf("Resting orders:   %d (bids: %d, asks: %d)\n",
		engine.Orders(), engine.OrderBook(matching.OrderSideBuy).Size(), engine.OrderBook(matching.OrderSideSell).Size())
	fmt.Printf("Time elapsed:     %f seconds\n", timeElapsed.Seconds())
}
