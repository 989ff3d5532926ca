package seed

import (
	"context"
	"fmt"
	"time"

	"amaluz-seeder/internal/domain/product"
	"amaluz-seeder/internal/domain/supplier"
	"amaluz-seeder/internal/pkg/errs"
	"amaluz-seeder/internal/pkg/timerange"

	"github.com/shopspring/decimal"
)

var productDimensions = []string{"6x6x9cm", "8x8x10cm", "10x10x12cm", "7x7x15cm", "12x12x8cm"}

var warrantyChoices = []int{0, 3, 6, 12}

// GenerateProducts lays a strictly increasing registration sequence across
// the catalog-building part of the window and assigns each product to a
// supplier weighted by how much open window the supplier still has, so older
// suppliers carry more of the catalog.
func (g *Generator) GenerateProducts(ctx context.Context, tx Tx) error {
	if len(g.state.Suppliers) == 0 {
		return errs.New("products phase requires suppliers")
	}

	catalogStart := g.state.Suppliers[0].RegisteredAt().Add(time.Hour)
	catalogEnd := g.window.Start.Add(g.window.Duration() * 3 / 5)
	if catalogStart.After(catalogEnd) {
		return errs.Wrap(timerange.ErrInvalidRange, "catalog window is empty")
	}

	seen := make(map[string]struct{}, g.cfg.Products)
	var products []*product.Product
	for i := range g.cfg.Products {
		at, err := timerange.SequentialInstant(catalogStart, catalogEnd, g.cfg.Products, i)
		if err != nil {
			return errs.Wrap(err, "failed to place product registration")
		}

		sup := g.pickSupplier(at)
		if sup == nil {
			g.skip("products", "no supplier registered before product", "registered_at", at)
			continue
		}

		category := product.Categories()[g.rng.IntN(len(product.Categories()))]
		fragrance := product.Fragrances()[g.rng.IntN(len(product.Fragrances()))]
		name := g.uniqueProductName(seen, category, fragrance)

		cost := g.moneyBetween(8000, 25000)
		// margin multiplier 1.3 - 2.2 keeps the price strictly above cost
		markup := decimal.NewFromFloat(1.3 + g.rng.Float64()*0.9)
		price := cost.Mul(markup).Round(2)

		supplierID := sup.ID()
		p, err := product.NewProduct(
			&supplierID,
			name,
			g.provider.ProductDescription(category.String(), fragrance.String()),
			category,
			fragrance,
			price,
			cost,
			g.intBetween(150, 600),
			productDimensions[g.rng.IntN(len(productDimensions))],
			warrantyChoices[g.rng.IntN(len(warrantyChoices))],
			at,
		)
		if err != nil {
			return errs.Wrap(err, "failed to build product")
		}
		products = append(products, p)
	}

	if err := tx.InsertProducts(ctx, products); err != nil {
		return errs.Wrap(err, "failed to insert products")
	}
	for _, p := range products {
		g.state.AddProduct(p)
	}
	g.report.AddCreated("products", len(products))
	return nil
}

// pickSupplier draws among suppliers already registered at the given
// instant, weighted by their remaining open window.
func (g *Generator) pickSupplier(at time.Time) *supplier.Supplier {
	var candidates []*supplier.Supplier
	total := time.Duration(0)
	for _, s := range g.state.Suppliers {
		if s.RegisteredAt().Before(at) {
			candidates = append(candidates, s)
			total += g.window.End.Sub(s.RegisteredAt())
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	pick := time.Duration(g.rng.Int64N(int64(total)))
	for _, s := range candidates {
		w := g.window.End.Sub(s.RegisteredAt())
		if pick < w {
			return s
		}
		pick -= w
	}
	return candidates[len(candidates)-1]
}

func (g *Generator) uniqueProductName(seen map[string]struct{}, category product.Category, fragrance product.Fragrance) string {
	base := g.provider.ProductName(category.String(), fragrance.String())
	name := base
	for n := 2; ; n++ {
		if _, dup := seen[name]; !dup {
			break
		}
		name = fmt.Sprintf("%s %d", base, n)
	}
	seen[name] = struct{}{}
	return name
}
