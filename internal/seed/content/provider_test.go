//go:build unit

package content_test

import (
	"strings"
	"testing"

	"amaluz-seeder/internal/pkg/config"
	"amaluz-seeder/internal/seed/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	cfg := config.NewTestConfig().Seed

	t.Run("selects faker", func(t *testing.T) {
		cfg := cfg
		cfg.ContentProvider = "faker"
		p, err := content.NewProvider(cfg)
		require.NoError(t, err)
		assert.IsType(t, &content.FakerProvider{}, p)
	})

	t.Run("selects static", func(t *testing.T) {
		cfg := cfg
		cfg.ContentProvider = "static"
		p, err := content.NewProvider(cfg)
		require.NoError(t, err)
		assert.IsType(t, &content.StaticProvider{}, p)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		cfg := cfg
		cfg.ContentProvider = "llm"
		_, err := content.NewProvider(cfg)
		require.ErrorIs(t, err, content.ErrUnknownProvider)
	})
}

func TestProvidersAreInterchangeable(t *testing.T) {
	providers := map[string]content.Provider{
		"faker":  content.NewFakerProvider(7),
		"static": content.NewStaticProvider(7),
	}

	for name, p := range providers {
		t.Run(name, func(t *testing.T) {
			assert.NotEmpty(t, p.PersonName())
			assert.NotEmpty(t, p.CompanyName())
			assert.NotEmpty(t, p.Phone())
			assert.NotEmpty(t, p.Street())
			assert.NotEmpty(t, p.City())
			assert.NotEmpty(t, p.Region())
			assert.NotEmpty(t, p.PostalCode())
			assert.NotEmpty(t, p.ProductName("aromatic", "vanilla"))
			assert.NotEmpty(t, p.ProductDescription("aromatic", "vanilla"))

			email := p.Email("Maria Lopez", 3)
			assert.Contains(t, email, "@")
			assert.True(t, strings.HasPrefix(email, "maria.lopez3"))

			for rating := 1; rating <= 5; rating++ {
				assert.NotEmpty(t, p.ReviewText(rating))
			}
		})
	}
}

func TestStaticProviderIsDeterministic(t *testing.T) {
	a := content.NewStaticProvider(11)
	b := content.NewStaticProvider(11)

	for range 20 {
		assert.Equal(t, a.PersonName(), b.PersonName())
		assert.Equal(t, a.ProductName("seasonal", "cinnamon"), b.ProductName("seasonal", "cinnamon"))
		assert.Equal(t, a.Phone(), b.Phone())
	}
}
