package stock

import (
	"errors"
	"math/rand/v2"
	"time"

	"amaluz-seeder/internal/domain/inventory"
	"amaluz-seeder/internal/domain/product"
	"amaluz-seeder/internal/pkg/config"
	"amaluz-seeder/internal/pkg/timerange"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownProduct = errors.New("product is not tracked by the stock engine")

	topTierBound = decimal.NewFromInt(8)
	midTierBound = decimal.NewFromInt(4)
)

// PopularitySource is the scorer view the engine needs to size restock
// batches. The simulator refreshes it as sales accrue.
type PopularitySource interface {
	Score(productID uuid.UUID) decimal.Decimal
	Rank() []uuid.UUID
}

// RestockEvent records one supplier replenishment, stamped at arrival.
type RestockEvent struct {
	ProductID uuid.UUID
	Quantity  int
	ArrivedAt time.Time
}

type tracked struct {
	inv  *inventory.Inventory
	prod *product.Product
}

// Engine owns all per-run restock state: the cooldown ledger, the tracked
// working set and the event log. Two engines never share state.
type Engine struct {
	cfg    config.StockConfig
	window timerange.Window
	rng    *rand.Rand

	items       map[uuid.UUID]tracked
	lastRestock map[uuid.UUID]time.Time
	events      []RestockEvent
	pop         PopularitySource
}

func NewEngine(cfg config.StockConfig, window timerange.Window, rng *rand.Rand) *Engine {
	return &Engine{
		cfg:         cfg,
		window:      window,
		rng:         rng,
		items:       make(map[uuid.UUID]tracked),
		lastRestock: make(map[uuid.UUID]time.Time),
	}
}

// Track registers a product and its inventory with the engine.
func (e *Engine) Track(prod *product.Product, inv *inventory.Inventory) {
	e.items[prod.ID()] = tracked{inv: inv, prod: prod}
}

func (e *Engine) SetPopularity(pop PopularitySource) {
	e.pop = pop
}

// Decrement consumes stock for a sale. False means insufficient stock and no
// mutation anywhere. A successful decrement may deactivate the product on
// depletion and may trigger a restock, both stamped after the operation.
//
// A pending restock can stamp the inventory at a future arrival; sales
// landing in that gap saturate to the arrival instant to keep the update
// chain monotonic.
func (e *Engine) Decrement(productID uuid.UUID, qty int, at time.Time) (bool, error) {
	item, ok := e.items[productID]
	if !ok {
		return false, ErrUnknownProduct
	}
	at = item.saturate(at)

	done, err := item.inv.Decrement(qty, at)
	if err != nil || !done {
		return done, err
	}

	if item.inv.Available() == 0 && item.prod.IsActive() {
		if err := item.prod.Deactivate(at); err != nil {
			return false, err
		}
	}

	if item.inv.Available() < e.cfg.RestockThreshold && e.cooledDown(productID, at) {
		if err := e.restock(item, at); err != nil {
			return false, err
		}
	}
	return true, nil
}

// Return puts cancelled stock back, reactivating the product when stock goes
// from zero to positive.
func (e *Engine) Return(productID uuid.UUID, qty int, at time.Time) error {
	item, ok := e.items[productID]
	if !ok {
		return ErrUnknownProduct
	}
	at = item.saturate(at)

	wasDepleted := item.inv.Available() == 0
	if err := item.inv.Increment(qty, at); err != nil {
		return err
	}
	if wasDepleted && !item.prod.IsActive() {
		return item.prod.Reactivate(at)
	}
	return nil
}

func (it tracked) saturate(at time.Time) time.Time {
	if at.Before(it.inv.UpdatedAt()) {
		at = it.inv.UpdatedAt()
	}
	if at.Before(it.prod.UpdatedAt()) {
		at = it.prod.UpdatedAt()
	}
	return at
}

func (e *Engine) Available(productID uuid.UUID) (int, error) {
	item, ok := e.items[productID]
	if !ok {
		return 0, ErrUnknownProduct
	}
	return item.inv.Available(), nil
}

func (e *Engine) Events() []RestockEvent {
	return e.events
}

func (e *Engine) cooledDown(productID uuid.UUID, at time.Time) bool {
	last, ok := e.lastRestock[productID]
	if !ok {
		return true
	}
	return at.Sub(last) >= e.cfg.RestockCooldown
}

func (e *Engine) restock(item tracked, at time.Time) error {
	qty := e.batchFor(item.prod.ID())

	// supplier lead time, never landing before the triggering sale
	arrival, err := timerange.NextAfter(e.rng, at, 24*time.Hour, 5*24*time.Hour, e.window.End)
	if err != nil {
		return err
	}

	if err := item.inv.Increment(qty, arrival); err != nil {
		return err
	}
	if !item.prod.IsActive() {
		if err := item.prod.Reactivate(arrival); err != nil {
			return err
		}
	}

	e.lastRestock[item.prod.ID()] = arrival
	e.events = append(e.events, RestockEvent{
		ProductID: item.prod.ID(),
		Quantity:  qty,
		ArrivedAt: arrival,
	})
	return nil
}

// batchFor sizes the replenishment from the product's popularity tier and
// its rank inside the tier: rank 1 gets the largest batch of the table.
func (e *Engine) batchFor(productID uuid.UUID) int {
	if e.pop == nil {
		return e.cfg.LowTierBatches[len(e.cfg.LowTierBatches)-1]
	}

	score := e.pop.Score(productID)
	var table []int
	switch {
	case score.GreaterThanOrEqual(topTierBound):
		table = e.cfg.TopTierBatches
	case score.GreaterThanOrEqual(midTierBound):
		table = e.cfg.MidTierBatches
	default:
		table = e.cfg.LowTierBatches
	}

	rank := e.tierRank(productID, score)
	topTier := score.GreaterThanOrEqual(topTierBound)
	switch {
	case rank == 1:
		return table[0]
	case topTier && rank <= 4, !topTier && rank <= 3:
		return table[1]
	default:
		return table[2]
	}
}

// tierRank is the product's 1-based position among products of its own tier,
// following the global popularity ordering.
func (e *Engine) tierRank(productID uuid.UUID, score decimal.Decimal) int {
	tierOf := func(s decimal.Decimal) int {
		switch {
		case s.GreaterThanOrEqual(topTierBound):
			return 0
		case s.GreaterThanOrEqual(midTierBound):
			return 1
		default:
			return 2
		}
	}

	want := tierOf(score)
	rank := 0
	for _, id := range e.pop.Rank() {
		if tierOf(e.pop.Score(id)) != want {
			continue
		}
		rank++
		if id == productID {
			return rank
		}
	}
	return rank + 1
}
