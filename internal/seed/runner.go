package seed

import (
	"context"
	"fmt"
	"log/slog"

	"amaluz-seeder/internal/pkg/config"
	"amaluz-seeder/internal/pkg/errs"
	"amaluz-seeder/internal/seed/content"
)

// Runner executes a full seeding run: it orders the phase graph, opens one
// transaction and drives the generator through it. Any failure rolls the
// whole run back.
type Runner struct {
	cfg config.Config
	uow UnitOfWork
	log *slog.Logger
}

func NewRunner(cfg config.Config, uow UnitOfWork, log *slog.Logger) *Runner {
	return &Runner{cfg: cfg, uow: uow, log: log}
}

func (r *Runner) Run(ctx context.Context) (*Report, error) {
	provider, err := content.NewProvider(r.cfg.Seed)
	if err != nil {
		return nil, err
	}
	gen, err := NewGenerator(r.cfg.Seed, r.cfg.Stock, provider, r.log)
	if err != nil {
		return nil, err
	}

	phases, err := Order(r.phases(gen))
	if err != nil {
		return nil, err
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx Tx) (txErr error) {
		// a panic anywhere in generation must still roll the run back
		defer func() {
			if p := recover(); p != nil {
				r.log.Error("generation panicked", "panic", p)
				txErr = errs.New(fmt.Sprintf("generation panicked: %v", p))
			}
		}()

		for _, phase := range phases {
			r.log.Info("running phase", "phase", phase.Name)
			if err := phase.Run(ctx, tx); err != nil {
				return errs.Wrap(err, fmt.Sprintf("phase %s failed", phase.Name))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	report := gen.Report()
	r.log.Info("seeding run complete",
		"sessions", report.Sessions,
		"conversions", report.Conversions,
		"restocks", report.RestockEvents,
	)
	return report, nil
}

// phases declares the dependency graph; the scheduler decides the order.
func (r *Runner) phases(gen *Generator) []Phase {
	return []Phase{
		{Name: "users", Run: gen.GenerateUsers},
		{Name: "suppliers", Run: gen.GenerateSuppliers},
		{Name: "products", After: []string{"suppliers"}, Run: gen.GenerateProducts},
		{
			Name:  "inventories",
			After: []string{"products"},
			Run: func(ctx context.Context, tx Tx) error {
				return gen.GenerateInventories(ctx, tx, r.cfg.Stock.InitialStock)
			},
		},
		{Name: "discounts", After: []string{"users"}, Run: gen.GenerateDiscounts},
		{Name: "carts", After: []string{"users", "products", "inventories"}, Run: gen.GenerateCartLines},
		{Name: "orders", After: []string{"carts", "discounts"}, Run: gen.GenerateOrders},
	}
}
