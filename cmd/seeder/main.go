package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"amaluz-seeder/cmd/seeder/bootstrap"
	"amaluz-seeder/internal/seed"

	"go.uber.org/fx"
)

func main() {
	var flags bootstrap.Flags
	flag.Uint64Var(&flags.Seed, "seed", 0, "random seed (overrides SEED_RANDOM_SEED)")
	flag.StringVar(&flags.WindowStart, "window-start", "", "generation window start, YYYY-MM-DD")
	flag.StringVar(&flags.WindowEnd, "window-end", "", "generation window end, YYYY-MM-DD")
	flag.IntVar(&flags.Customers, "customers", 0, "number of customers to generate")
	flag.IntVar(&flags.Products, "products", 0, "number of products to generate")
	flag.Parse()

	exitCode := 0
	app := fx.New(
		fx.Supply(flags),
		bootstrap.Module,
		fx.Invoke(func(lc fx.Lifecycle, sd fx.Shutdowner, runner *seed.Runner, logger *slog.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					go func() {
						report, err := runner.Run(context.Background())
						if err != nil {
							logger.Error("seeding failed", "error", err.Error())
							exitCode = 1
						} else {
							logger.Info("seeding finished", "report", report.String())
						}
						if err := sd.Shutdown(); err != nil {
							logger.Error("shutdown failed", "error", err.Error())
						}
					}()
					return nil
				},
			})
		}),
	)

	app.Run()
	os.Exit(exitCode)
}
