package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (DB connection, credentials)
// - default: Values common across all environments (window, counts, tuning knobs)
// -----------------------------------------------------------------------------

type Config struct {
	DB    DBConfig
	Log   LogConfig
	Seed  SeedConfig
	Stock StockConfig
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// SeedConfig drives the generation run. WindowStart/WindowEnd bound every
// generated timestamp; Seed makes the whole run reproducible.
type SeedConfig struct {
	Seed        uint64    `envconfig:"SEED_RANDOM_SEED" default:"1"`
	WindowStart time.Time `envconfig:"SEED_WINDOW_START" default:"2024-01-01T00:00:00Z"`
	WindowEnd   time.Time `envconfig:"SEED_WINDOW_END" default:"2024-12-31T23:59:59Z"`

	Admins    int `envconfig:"SEED_ADMINS" default:"2"`
	Sellers   int `envconfig:"SEED_SELLERS" default:"5"`
	Customers int `envconfig:"SEED_CUSTOMERS" default:"120"`
	Suppliers int `envconfig:"SEED_SUPPLIERS" default:"8"`
	Products  int `envconfig:"SEED_PRODUCTS" default:"60"`
	Discounts int `envconfig:"SEED_DISCOUNTS" default:"12"`

	// Customers left unconfirmed after the confirmation pass.
	UnconfirmedCustomers int `envconfig:"SEED_UNCONFIRMED_CUSTOMERS" default:"6"`

	// Session-to-order conversion rate is drawn uniformly from this interval.
	ConversionMin float64 `envconfig:"SEED_CONVERSION_MIN" default:"0.6"`
	ConversionMax float64 `envconfig:"SEED_CONVERSION_MAX" default:"0.9"`

	CancelRate         float64 `envconfig:"SEED_CANCEL_RATE" default:"0.05"`
	RefundDeliveredPct float64 `envconfig:"SEED_REFUND_DELIVERED_PCT" default:"0.03"`
	RefundCancelledPct float64 `envconfig:"SEED_REFUND_CANCELLED_PCT" default:"0.01"`
	CommentProbability float64 `envconfig:"SEED_COMMENT_PROBABILITY" default:"0.7"`
	DiscountAttachRate float64 `envconfig:"SEED_DISCOUNT_ATTACH_RATE" default:"0.8"`

	// Content provider: "faker" or "static".
	ContentProvider string `envconfig:"SEED_CONTENT_PROVIDER" default:"faker"`

	DefaultPassword string `envconfig:"SEED_DEFAULT_PASSWORD" default:"changeme123"`
}

// StockConfig holds the restock tuning the engine reads. Batch tables are
// indexed by rank break inside the popularity tier, largest batch first.
type StockConfig struct {
	InitialStock     int           `envconfig:"STOCK_INITIAL" default:"24"`
	RestockThreshold int           `envconfig:"STOCK_RESTOCK_THRESHOLD" default:"12"`
	RestockCooldown  time.Duration `envconfig:"STOCK_RESTOCK_COOLDOWN" default:"480h"`

	TopTierBatches []int `envconfig:"STOCK_TOP_TIER_BATCHES" default:"108,96,84"`
	MidTierBatches []int `envconfig:"STOCK_MID_TIER_BATCHES" default:"72,64,48"`
	LowTierBatches []int `envconfig:"STOCK_LOW_TIER_BATCHES" default:"36,24,12"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
		Seed: SeedConfig{
			Seed:                 1,
			WindowStart:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			WindowEnd:            time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			Admins:               1,
			Sellers:              2,
			Customers:            20,
			Suppliers:            3,
			Products:             12,
			Discounts:            4,
			UnconfirmedCustomers: 2,
			ConversionMin:        0.6,
			ConversionMax:        0.9,
			CancelRate:           0.05,
			RefundDeliveredPct:   0.03,
			RefundCancelledPct:   0.01,
			CommentProbability:   0.7,
			DiscountAttachRate:   0.8,
			ContentProvider:      "static",
			DefaultPassword:      "test-password",
		},
		Stock: StockConfig{
			InitialStock:     24,
			RestockThreshold: 12,
			RestockCooldown:  480 * time.Hour,
			TopTierBatches:   []int{108, 96, 84},
			MidTierBatches:   []int{72, 64, 48},
			LowTierBatches:   []int{36, 24, 12},
		},
	}
}
