package seed

import (
	"context"
	"time"

	"amaluz-seeder/internal/domain/supplier"
	"amaluz-seeder/internal/pkg/errs"
	"amaluz-seeder/internal/pkg/timerange"
)

// GenerateSuppliers spreads suppliers over the opening quarter of the window
// with jitter, keeping registration strictly increasing. Products need
// suppliers that exist well before the shopping traffic starts.
func (g *Generator) GenerateSuppliers(ctx context.Context, tx Tx) error {
	supplierEnd := g.window.Start.Add(g.window.Duration() / 4)

	var suppliers []*supplier.Supplier
	var prev time.Time
	for i := range g.cfg.Suppliers {
		base, err := timerange.SequentialInstant(g.window.Start, supplierEnd, g.cfg.Suppliers, i)
		if err != nil {
			return errs.Wrap(err, "failed to place supplier registration")
		}
		at := base.Add(time.Duration(g.intBetween(0, 3600)) * time.Second)
		if !at.After(prev) {
			at = prev.Add(time.Second)
		}
		prev = at

		s, err := supplier.NewSupplier(
			g.provider.CompanyName(),
			g.provider.PersonName(),
			g.provider.Phone(),
			g.provider.Street()+", "+g.provider.City(),
			at,
		)
		if err != nil {
			return errs.Wrap(err, "failed to build supplier")
		}
		suppliers = append(suppliers, s)
	}

	if err := tx.InsertSuppliers(ctx, suppliers); err != nil {
		return errs.Wrap(err, "failed to insert suppliers")
	}
	g.state.Suppliers = suppliers
	g.report.AddCreated("suppliers", len(suppliers))
	return nil
}
