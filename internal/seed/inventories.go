package seed

import (
	"context"
	"time"

	"amaluz-seeder/internal/domain/inventory"
	"amaluz-seeder/internal/pkg/errs"
	"amaluz-seeder/internal/pkg/timerange"
)

// GenerateInventories creates one stock row per product shortly after the
// product itself, and hands the pair to the stock engine.
func (g *Generator) GenerateInventories(ctx context.Context, tx Tx, initialStock int) error {
	var inventories []*inventory.Inventory
	for _, p := range g.state.Products {
		at, err := timerange.NextAfter(g.rng, p.RegisteredAt(), 10*time.Second, 300*time.Second, g.window.End)
		if err != nil {
			return errs.Wrap(err, "failed to place inventory registration")
		}

		inv, err := inventory.NewInventory(p.ID(), initialStock, at)
		if err != nil {
			return errs.Wrap(err, "failed to build inventory")
		}
		inventories = append(inventories, inv)
		g.state.Inventories[p.ID()] = inv
		g.engine.Track(p, inv)
	}

	if err := tx.InsertInventories(ctx, inventories); err != nil {
		return errs.Wrap(err, "failed to insert inventories")
	}
	g.report.AddCreated("inventories", len(inventories))
	return nil
}
