package bootstrap

import (
	"time"

	"amaluz-seeder/internal/pkg/config"
	"amaluz-seeder/internal/pkg/errs"

	"go.uber.org/fx"
)

// Flags carries command-line overrides. Zero values mean "use the
// environment", so env-driven runs and flag-driven runs share one path.
type Flags struct {
	Seed        uint64
	WindowStart string
	WindowEnd   string
	Customers   int
	Products    int
}

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

func NewConfig(flags Flags) (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}

	if flags.Seed != 0 {
		cfg.Seed.Seed = flags.Seed
	}
	if flags.WindowStart != "" {
		t, err := time.Parse("2006-01-02", flags.WindowStart)
		if err != nil {
			return config.Config{}, errs.Wrap(err, "invalid -window-start")
		}
		cfg.Seed.WindowStart = t
	}
	if flags.WindowEnd != "" {
		t, err := time.Parse("2006-01-02", flags.WindowEnd)
		if err != nil {
			return config.Config{}, errs.Wrap(err, "invalid -window-end")
		}
		cfg.Seed.WindowEnd = t
	}
	if flags.Customers > 0 {
		cfg.Seed.Customers = flags.Customers
	}
	if flags.Products > 0 {
		cfg.Seed.Products = flags.Products
	}

	return cfg, nil
}
