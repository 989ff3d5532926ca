package content

import (
	"errors"

	"amaluz-seeder/internal/pkg/config"
)

var ErrUnknownProvider = errors.New("unknown content provider")

// Provider supplies the human-readable surface of generated rows. Factories
// depend on this interface only; the concrete source is a config choice.
type Provider interface {
	PersonName() string
	CompanyName() string
	Email(name string, n int) string
	Phone() string
	ProductName(category, fragrance string) string
	ProductDescription(category, fragrance string) string
	Street() string
	City() string
	Region() string
	PostalCode() string
	ReviewText(rating int) string
}

// NewProvider selects the implementation named in config.
func NewProvider(cfg config.SeedConfig) (Provider, error) {
	switch cfg.ContentProvider {
	case "faker":
		return NewFakerProvider(cfg.Seed), nil
	case "static":
		return NewStaticProvider(cfg.Seed), nil
	default:
		return nil, ErrUnknownProvider
	}
}
