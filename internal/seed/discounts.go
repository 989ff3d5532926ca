package seed

import (
	"context"
	"fmt"
	"time"

	"amaluz-seeder/internal/domain/discount"
	"amaluz-seeder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type holiday struct {
	month time.Month
	day   int
	tag   string
}

// The promotional calendar discounts anchor to.
var holidays = []holiday{
	{time.January, 1, "NEWYEAR"},
	{time.February, 14, "LOVE"},
	{time.May, 12, "MOM"},
	{time.July, 20, "INDEP"},
	{time.October, 31, "HALLOWEEN"},
	{time.November, 29, "BLACKFRI"},
	{time.December, 25, "XMAS"},
}

// GenerateDiscounts anchors one code per holiday occurring inside the
// window, cycling the calendar when more codes are requested than holidays.
// Validity starts 7-14 days before the holiday and ends 1-3 days after;
// registration lands up to 30 days before the start and strictly increases
// across codes.
func (g *Generator) GenerateDiscounts(ctx context.Context, tx Tx) error {
	anchors := g.holidayAnchors()
	if len(anchors) == 0 {
		g.skip("discounts", "no holiday falls inside the window")
		return nil
	}

	var discounts []*discount.Discount
	var lastReg time.Time
	for i := range g.cfg.Discounts {
		h := anchors[i%len(anchors)]
		round := i / len(anchors)

		starts := h.at.AddDate(0, 0, -g.intBetween(7, 14))
		ends := h.at.AddDate(0, 0, g.intBetween(1, 3))
		starts, ends = g.window.Clamp(starts), g.window.Clamp(ends)
		if !starts.Before(ends) {
			g.skip("discounts", "validity window collapsed", "holiday", h.tag)
			continue
		}

		reg := starts.AddDate(0, 0, -g.intBetween(1, 30))
		reg = g.window.Clamp(reg)
		if !reg.After(lastReg) {
			reg = lastReg.Add(time.Second)
		}
		if reg.After(starts) {
			g.skip("discounts", "no room to register before start", "holiday", h.tag)
			continue
		}
		lastReg = reg

		code := fmt.Sprintf("AMALUZ-%s%s", h.tag, h.at.Format("06"))
		if round > 0 {
			code = fmt.Sprintf("%s-%d", code, round+1)
		}

		d, err := discount.NewDiscount(
			code,
			fmt.Sprintf("%s promotion", h.tag),
			decimal.NewFromInt(int64(g.intBetween(10, 50))),
			starts,
			ends,
			reg,
		)
		if err != nil {
			return errs.Wrap(err, "failed to build discount")
		}
		discounts = append(discounts, d)
	}

	if err := tx.InsertDiscounts(ctx, discounts); err != nil {
		return errs.Wrap(err, "failed to insert discounts")
	}
	g.state.Discounts = discounts
	g.report.AddCreated("discounts", len(discounts))
	return nil
}

type holidayAnchor struct {
	at  time.Time
	tag string
}

func (g *Generator) holidayAnchors() []holidayAnchor {
	var anchors []holidayAnchor
	for year := g.window.Start.Year(); year <= g.window.End.Year(); year++ {
		for _, h := range holidays {
			at := time.Date(year, h.month, h.day, 12, 0, 0, 0, g.window.Start.Location())
			if g.window.Contains(at) {
				anchors = append(anchors, holidayAnchor{at: at, tag: h.tag})
			}
		}
	}
	return anchors
}
