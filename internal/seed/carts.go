package seed

import (
	"context"
	"time"

	"amaluz-seeder/internal/domain/cart"
	"amaluz-seeder/internal/domain/product"
	"amaluz-seeder/internal/domain/user"
	"amaluz-seeder/internal/pkg/errs"
	"amaluz-seeder/internal/pkg/timerange"
)

// GenerateCartLines gives every active customer one shopping session of 2-5
// distinct products, lines minutes apart. Only products already registered
// when the session starts can land in it.
func (g *Generator) GenerateCartLines(ctx context.Context, tx Tx) error {
	var lines []*cart.Line
	for _, u := range g.state.ActiveCustomers() {
		sessionLines, err := g.sessionFor(u)
		if err != nil {
			return err
		}
		lines = append(lines, sessionLines...)
	}

	if err := tx.InsertCartLines(ctx, lines); err != nil {
		return errs.Wrap(err, "failed to insert cart lines")
	}
	g.state.CartLines = lines
	g.report.AddCreated("cart_lines", len(lines))
	return nil
}

func (g *Generator) sessionFor(u *user.User) ([]*cart.Line, error) {
	// sessions start after confirmation, leaving room for checkout and
	// fulfilment before the window closes
	earliest := u.UpdatedAt().Add(time.Minute)
	latest := g.window.End.Add(-48 * time.Hour)
	if earliest.After(latest) {
		g.skip("cart_sessions", "no room after user activation", "user_id", u.ID())
		return nil, nil
	}

	sessionStart, err := timerange.RandomInstant(g.rng, earliest, latest)
	if err != nil {
		return nil, errs.Wrap(err, "failed to draw session start")
	}

	available := g.productsRegisteredBefore(sessionStart)
	if len(available) < 2 {
		g.skip("cart_sessions", "not enough products exist yet", "user_id", u.ID())
		return nil, nil
	}

	want := g.intBetween(2, 5)
	if want > len(available) {
		want = len(available)
	}
	g.rng.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})

	var lines []*cart.Line
	at := sessionStart
	for _, p := range available[:want] {
		floor := u.RegisteredAt()
		if p.RegisteredAt().After(floor) {
			floor = p.RegisteredAt()
		}
		line, err := cart.NewLine(u.ID(), p.ID(), g.intBetween(1, 12), floor, at)
		if err != nil {
			return nil, errs.Wrap(err, "failed to build cart line")
		}
		lines = append(lines, line)
		at = at.Add(time.Duration(g.intBetween(1, 3)) * time.Minute)
	}
	return lines, nil
}

func (g *Generator) productsRegisteredBefore(at time.Time) []*product.Product {
	var out []*product.Product
	for _, p := range g.state.Products {
		if p.RegisteredAt().Before(at) {
			out = append(out, p)
		}
	}
	return out
}
