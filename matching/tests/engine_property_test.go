package matching_test

import (
	"testing"

	"pgregory.net/rapid"

	matching "github.com/fluxtrade/flux-matching-engine/matching"
)

// modelOrder is the reference-model view of one resting order, kept in
// arrival order so price-time priority can be recomputed naively.
type modelOrder struct {
	id       uint64
	price    uint64
	quantity int64
}

// bookModel replays the same operations as the real ask book using the naive
// textbook algorithm and exposes the values the book must agree on.
type bookModel struct {
	orders []modelOrder
}

func (m *bookModel) place(order modelOrder) {
	m.orders = append(m.orders, order)
}

func (m *bookModel) cancel(orderID uint64) {
	for i, order := range m.orders {
		if order.id == orderID {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return
		}
	}
}

// match consumes liquidity for a buy aggressor capped at the given price:
// best (lowest) price first, arrival order within a price.
func (m *bookModel) match(priceCap uint64, quantity int64) []matching.Trade {
	var trades []matching.Trade
	for quantity > 0 {
		best := -1
		for i, order := range m.orders {
			if order.price > priceCap {
				continue
			}
			if best == -1 || order.price < m.orders[best].price {
				best = i
			}
		}
		if best == -1 {
			break
		}
		order := &m.orders[best]
		traded := order.quantity
		if quantity < traded {
			traded = quantity
		}
		trades = append(trades, matching.Trade{
			PassiveOrderID: order.id,
			Price:          order.price,
			Quantity:       traded,
		})
		order.quantity -= traded
		quantity -= traded
		if order.quantity == 0 {
			m.cancel(order.id)
		}
	}
	return trades
}

func (m *bookModel) size() int {
	return len(m.orders)
}

func (m *bookModel) volume() int64 {
	var volume int64
	for _, order := range m.orders {
		volume += order.quantity
	}
	return volume
}

func (m *bookModel) bestPrice() (uint64, bool) {
	var best uint64
	for _, order := range m.orders {
		if best == 0 || order.price < best {
			best = order.price
		}
	}
	return best, best != 0
}

// requireBookMatchesModel compares every observable of the real book against
// the reference model.
func requireBookMatchesModel(t *rapid.T, book *matching.OrderBook, model *bookModel) {
	t.Helper()
	if book.Size() != model.size() {
		t.Fatalf("book size %d, model size %d", book.Size(), model.size())
	}
	if book.Volume() != model.volume() {
		t.Fatalf("book volume %d, model volume %d", book.Volume(), model.volume())
	}
	bookBest, err := book.BestPrice()
	modelBest, ok := model.bestPrice()
	if ok {
		if err != nil {
			t.Fatalf("model best price %d, book is empty", modelBest)
		}
		if bookBest != modelBest {
			t.Fatalf("book best price %d, model best price %d", bookBest, modelBest)
		}
	} else if err == nil {
		t.Fatalf("book best price %d, model is empty", bookBest)
	}
}

// TestPropertyBookAgainstModel drives a random sequence of place, cancel and
// match operations against an ask book and the reference model, checking
// price-time priority, conservation and cancel idempotence on every step.
func TestPropertyBookAgainstModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		book := matching.NewOrderBook(matching.OrderSideSell, matching.NewAllocator())
		model := &bookModel{}

		nextOrderID := uint64(1)
		aggressorID := uint64(1000000)
		var knownIDs []uint64

		steps := rapid.IntRange(1, 200).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0, 1: // place
				price := rapid.Uint64Range(95, 105).Draw(t, "price")
				quantity := rapid.Int64Range(1, 20).Draw(t, "quantity")
				order := matching.NewLimitOrder(nextOrderID, matching.OrderSideSell, price, quantity)
				if err := book.Place(&order); err != nil {
					t.Fatalf("place failed: %v", err)
				}
				model.place(modelOrder{id: nextOrderID, price: price, quantity: quantity})
				knownIDs = append(knownIDs, nextOrderID)
				nextOrderID++

			case 2: // cancel, repeated to cover idempotence, sometimes unknown
				if len(knownIDs) == 0 {
					continue
				}
				orderID := knownIDs[rapid.IntRange(0, len(knownIDs)-1).Draw(t, "cancelIdx")]
				book.Cancel(orderID)
				model.cancel(orderID)
				if rapid.Bool().Draw(t, "doubleCancel") {
					book.Cancel(orderID)
				}

			case 3: // match with a buy aggressor
				priceCap := rapid.Uint64Range(94, 106).Draw(t, "priceCap")
				quantity := rapid.Int64Range(1, 40).Draw(t, "aggrQuantity")
				aggressorID++
				aggressor := matching.NewLimitOrder(aggressorID, matching.OrderSideBuy, priceCap, quantity)
				trades, err := book.Match(&aggressor)
				if err != nil {
					t.Fatalf("match failed: %v", err)
				}
				expected := model.match(priceCap, quantity)

				if len(trades) != len(expected) {
					t.Fatalf("got %d trades, model expects %d", len(trades), len(expected))
				}
				var traded int64
				for j, trade := range trades {
					if trade.PassiveOrderID != expected[j].PassiveOrderID ||
						trade.Price != expected[j].Price ||
						trade.Quantity != expected[j].Quantity {
						t.Fatalf("trade %d mismatch: got %+v, model expects %+v", j, trade, expected[j])
					}
					if trade.ActiveOrderID != aggressorID {
						t.Fatalf("trade %d active order id %d, expected %d", j, trade.ActiveOrderID, aggressorID)
					}
					traded += trade.Quantity
				}
				if traded > quantity {
					t.Fatalf("conservation violated: traded %d of %d", traded, quantity)
				}
				if aggressor.ExecutedQuantity() != traded {
					t.Fatalf("aggressor executed %d, trades sum %d", aggressor.ExecutedQuantity(), traded)
				}
			}

			requireBookMatchesModel(t, book, model)
		}
	})
}

// TestPropertyTimePriorityWithinPrice checks that orders resting at one price
// are always consumed in strict arrival order, no matter which of them were
// cancelled in between.
func TestPropertyTimePriorityWithinPrice(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		book := matching.NewOrderBook(matching.OrderSideSell, matching.NewAllocator())

		count := rapid.IntRange(2, 30).Draw(t, "count")
		var live []uint64
		for id := uint64(1); id <= uint64(count); id++ {
			order := matching.NewLimitOrder(id, matching.OrderSideSell, 100, 1)
			if err := book.Place(&order); err != nil {
				t.Fatalf("place failed: %v", err)
			}
			live = append(live, id)
		}

		cancels := rapid.IntRange(0, count-1).Draw(t, "cancels")
		for i := 0; i < cancels; i++ {
			idx := rapid.IntRange(0, len(live)-1).Draw(t, "cancelIdx")
			book.Cancel(live[idx])
			live = append(live[:idx], live[idx+1:]...)
		}

		aggressor := matching.NewLimitOrder(999999, matching.OrderSideBuy, 100, int64(count))
		trades, err := book.Match(&aggressor)
		if err != nil {
			t.Fatalf("match failed: %v", err)
		}

		if len(trades) != len(live) {
			t.Fatalf("got %d trades, expected %d survivors", len(trades), len(live))
		}
		for i, trade := range trades {
			if trade.PassiveOrderID != live[i] {
				t.Fatalf("trade %d consumed order %d, expected %d", i, trade.PassiveOrderID, live[i])
			}
		}
	})
}
