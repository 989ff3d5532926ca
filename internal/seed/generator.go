package seed

import (
	"log/slog"
	"math/rand/v2"

	"amaluz-seeder/internal/pkg/config"
	"amaluz-seeder/internal/pkg/timerange"
	"amaluz-seeder/internal/seed/content"
	"amaluz-seeder/internal/seed/stock"

	"github.com/shopspring/decimal"
)

// Generator holds everything one run's factories share: the working set, the
// seeded randomness, the content provider and the stock engine. All methods
// mutate State in memory and write through the Tx they are handed.
type Generator struct {
	cfg      config.SeedConfig
	window   timerange.Window
	rng      *rand.Rand
	provider content.Provider
	engine   *stock.Engine
	state    *State
	report   *Report
	log      *slog.Logger

	emailSeq int
	orderSeq int
}

func NewGenerator(
	cfg config.SeedConfig,
	stockCfg config.StockConfig,
	provider content.Provider,
	log *slog.Logger,
) (*Generator, error) {
	window, err := timerange.NewWindow(cfg.WindowStart, cfg.WindowEnd)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, 0))
	return &Generator{
		cfg:      cfg,
		window:   window,
		rng:      rng,
		provider: provider,
		engine:   stock.NewEngine(stockCfg, window, rng),
		state:    NewState(),
		report:   NewReport(),
		log:      log,
	}, nil
}

func (g *Generator) State() *State   { return g.state }
func (g *Generator) Report() *Report { return g.report }

// skip logs one constraint-unsatisfiable entity and tallies it. Skips never
// abort the run.
func (g *Generator) skip(entity, reason string, args ...any) {
	g.report.AddSkipped(entity, 1)
	logArgs := append([]any{slog.String("entity", entity), slog.String("reason", reason)}, args...)
	g.log.Info("skipping entity", logArgs...)
}

func (g *Generator) chance(p float64) bool {
	return g.rng.Float64() < p
}

// intBetween draws uniformly from [lo, hi] inclusive.
func (g *Generator) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.IntN(hi-lo+1)
}

// moneyBetween draws a cent-resolution amount from [lo, hi].
func (g *Generator) moneyBetween(lo, hi int64) decimal.Decimal {
	cents := lo*100 + g.rng.Int64N((hi-lo)*100+1)
	return decimal.New(cents, -2)
}
