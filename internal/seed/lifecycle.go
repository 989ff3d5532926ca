package seed

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"amaluz-seeder/internal/domain/address"
	"amaluz-seeder/internal/domain/comment"
	"amaluz-seeder/internal/domain/discount"
	"amaluz-seeder/internal/domain/order"
	"amaluz-seeder/internal/domain/product"
	"amaluz-seeder/internal/domain/shipment"
	"amaluz-seeder/internal/pkg/errs"
	"amaluz-seeder/internal/pkg/timerange"
	"amaluz-seeder/internal/seed/popularity"

	"github.com/google/uuid"
)

var carriers = []string{"Servientrega", "Coordinadora", "Interrapidisimo", "Envia", "Deprisa"}

// ratingWeights skews review ratings toward the satisfied end.
var ratingWeights = []int{5, 10, 20, 35, 30}

const alternateProductBudget = 3

// GenerateOrders replays the cart history as shopping sessions in strict
// time order and converts a drawn fraction of them into orders with full
// lifecycles: address, order, shipment, status walk, comments.
func (g *Generator) GenerateOrders(ctx context.Context, tx Tx) error {
	sessions := GroupSessions(g.state.CartLines)
	g.report.Sessions = len(sessions)
	if len(sessions) == 0 {
		g.report.RestockEvents = len(g.engine.Events())
		return nil
	}

	rate := g.cfg.ConversionMin + g.rng.Float64()*(g.cfg.ConversionMax-g.cfg.ConversionMin)
	remainingTarget := int(math.Round(rate * float64(len(sessions))))
	g.refreshPopularity()

	for i, s := range sessions {
		if remainingTarget <= 0 {
			break
		}
		// dynamic probability keeps the quota reachable without
		// reordering the sessions
		remainingSessions := len(sessions) - i
		if !g.chance(float64(remainingTarget) / float64(remainingSessions)) {
			continue
		}

		converted, err := g.convertSession(ctx, tx, s)
		if err != nil {
			return err
		}
		if converted {
			remainingTarget--
			g.report.Conversions++
		}
	}

	g.report.RestockEvents = len(g.engine.Events())
	return nil
}

func (g *Generator) refreshPopularity() {
	g.engine.SetPopularity(popularity.NewScorer(g.state.Signals()))
}

func (g *Generator) convertSession(ctx context.Context, tx Tx, s Session) (bool, error) {
	u, ok := g.state.UserByID[s.UserID]
	if !ok {
		return false, errs.New("session user missing from working set")
	}

	addrAt, err := timerange.NextAfter(g.rng, s.End(), time.Minute, 3*time.Minute, g.window.End)
	if err != nil {
		return false, errs.Wrap(err, "failed to draw address instant")
	}
	orderAt, err := timerange.NextAfter(g.rng, addrAt, time.Minute, 3*time.Minute, g.window.End)
	if err != nil {
		return false, errs.Wrap(err, "failed to draw order instant")
	}
	if addrAt.After(g.window.End) || orderAt.After(g.window.End) {
		g.skip("orders", "no room for checkout before window end", "user_id", s.UserID)
		return false, nil
	}

	lines, touched, err := g.buildOrderLines(s, orderAt)
	if err != nil {
		return false, err
	}
	if len(lines) == 0 {
		g.skip("orders", "stock exhausted for every line", "user_id", s.UserID)
		return false, nil
	}

	addr, err := address.NewAddress(
		s.UserID,
		g.provider.Street(),
		g.provider.City(),
		g.provider.Region(),
		g.provider.PostalCode(),
		"Colombia",
		u.RegisteredAt(),
		addrAt,
	)
	if err != nil {
		return false, errs.Wrap(err, "failed to build address")
	}

	disc := g.pickDiscount(s.UserID, orderAt)
	var discSpec *order.DiscountSpec
	if disc != nil {
		discSpec = &order.DiscountSpec{ID: disc.ID(), Percent: disc.Percent()}
	}

	shippingFee := g.moneyBetween(5000, 20000)
	g.orderSeq++
	o, err := order.NewOrder(g.orderSeq, s.UserID, addr.ID(), lines, discSpec, shippingFee, orderAt)
	if err != nil {
		return false, errs.Wrap(err, "failed to build order")
	}

	estimate := g.window.Clamp(orderAt.Add(time.Duration(g.intBetween(2, 14)) * 24 * time.Hour))
	carrier := carriers[g.rng.IntN(len(carriers))]
	sh, err := shipment.NewShipment(o.ID(), carrier, g.trackingCode(carrier), shippingFee, estimate, orderAt)
	if err != nil {
		return false, errs.Wrap(err, "failed to build shipment")
	}

	if err := tx.InsertAddresses(ctx, []*address.Address{addr}); err != nil {
		return false, errs.Wrap(err, "failed to insert address")
	}
	if err := tx.InsertOrders(ctx, []*order.Order{o}); err != nil {
		return false, errs.Wrap(err, "failed to insert order")
	}
	if err := tx.InsertShipments(ctx, []*shipment.Shipment{sh}); err != nil {
		return false, errs.Wrap(err, "failed to insert shipment")
	}

	g.state.Addresses = append(g.state.Addresses, addr)
	g.state.Orders = append(g.state.Orders, o)
	g.state.Shipments[o.ID()] = sh
	g.report.AddCreated("addresses", 1)
	g.report.AddCreated("orders", 1)
	g.report.AddCreated("shipments", 1)

	if disc != nil {
		usage := DiscountUsage{
			ID:         uuid.New(),
			DiscountID: disc.ID(),
			UserID:     s.UserID,
			OrderID:    o.ID(),
			UsedAt:     orderAt,
		}
		if err := tx.InsertDiscountUsages(ctx, []DiscountUsage{usage}); err != nil {
			return false, errs.Wrap(err, "failed to insert discount usage")
		}
		g.state.RecordDiscountUsage(usage)
	}

	if err := g.walkOrder(ctx, tx, o, sh, touched); err != nil {
		return false, err
	}
	if err := g.flushStockChanges(ctx, tx, touched); err != nil {
		return false, err
	}
	return true, nil
}

type stockTouch struct {
	prevInvUpdate  time.Time
	prevProdUpdate time.Time
}

// buildOrderLines turns the session's cart lines into order lines against
// live stock. Quantities cap at availability; a dead line retries with an
// alternate in-stock product before being dropped.
func (g *Generator) buildOrderLines(s Session, orderAt time.Time) ([]order.Line, map[uuid.UUID]stockTouch, error) {
	touched := make(map[uuid.UUID]stockTouch)
	inOrder := make(map[uuid.UUID]struct{})
	var lines []order.Line

	for _, cl := range s.Lines {
		productID := cl.ProductID()
		qty := cl.Quantity()

		// an earlier alternate pick may already cover this product
		_, dup := inOrder[productID]

		if avail, err := g.engine.Available(productID); err != nil {
			return nil, nil, errs.Wrap(err, "failed to read stock")
		} else if avail < qty {
			qty = avail
		}

		ok := qty > 0 && !dup
		if ok {
			g.touch(touched, productID)
			done, err := g.engine.Decrement(productID, qty, orderAt)
			if err != nil {
				return nil, nil, errs.Wrap(err, "failed to decrement stock")
			}
			ok = done
		}

		if !ok {
			alt, altQty, err := g.alternateProduct(touched, inOrder, cl.Quantity(), orderAt)
			if err != nil {
				return nil, nil, err
			}
			if alt == uuid.Nil {
				g.skip("order_lines", "no stock for line or alternates", "product_id", productID)
				continue
			}
			productID, qty = alt, altQty
		}

		unit := g.state.ProductByID[productID].SalePrice()
		line, err := order.NewLine(productID, qty, unit)
		if err != nil {
			return nil, nil, errs.Wrap(err, "failed to build order line")
		}
		lines = append(lines, line)
		inOrder[productID] = struct{}{}
	}
	return lines, touched, nil
}

// alternateProduct picks a replacement with stock among active products that
// already existed at order time.
func (g *Generator) alternateProduct(touched map[uuid.UUID]stockTouch, inOrder map[uuid.UUID]struct{}, wantQty int, orderAt time.Time) (uuid.UUID, int, error) {
	var candidates []*product.Product
	for _, p := range g.state.Products {
		if _, dup := inOrder[p.ID()]; dup {
			continue
		}
		if !p.IsActive() || !p.RegisteredAt().Before(orderAt) {
			continue
		}
		candidates = append(candidates, p)
	}

	for attempt := 0; attempt < alternateProductBudget && len(candidates) > 0; attempt++ {
		i := g.rng.IntN(len(candidates))
		p := candidates[i]
		candidates = append(candidates[:i], candidates[i+1:]...)

		avail, err := g.engine.Available(p.ID())
		if err != nil {
			return uuid.Nil, 0, errs.Wrap(err, "failed to read stock")
		}
		qty := min(wantQty, avail)
		if qty == 0 {
			continue
		}

		g.touch(touched, p.ID())
		done, err := g.engine.Decrement(p.ID(), qty, orderAt)
		if err != nil {
			return uuid.Nil, 0, errs.Wrap(err, "failed to decrement stock")
		}
		if done {
			return p.ID(), qty, nil
		}
	}
	return uuid.Nil, 0, nil
}

func (g *Generator) touch(touched map[uuid.UUID]stockTouch, productID uuid.UUID) {
	if _, seen := touched[productID]; seen {
		return
	}
	touched[productID] = stockTouch{
		prevInvUpdate:  g.state.Inventories[productID].UpdatedAt(),
		prevProdUpdate: g.state.ProductByID[productID].UpdatedAt(),
	}
}

// pickDiscount returns a code active at the order instant that this user has
// not redeemed yet, or nil.
func (g *Generator) pickDiscount(userID uuid.UUID, at time.Time) *discount.Discount {
	if !g.chance(g.cfg.DiscountAttachRate) {
		return nil
	}
	var eligible []*discount.Discount
	for _, d := range g.state.Discounts {
		if d.ActiveAt(at) && !g.state.DiscountUsedBy(userID, d.ID()) {
			eligible = append(eligible, d)
		}
	}
	if len(eligible) == 0 {
		return nil
	}
	return eligible[g.rng.IntN(len(eligible))]
}

// walkOrder advances the order and its shipment through the lifecycle. Every
// hop draws a strictly later instant; when the window runs out the order
// simply stays where it is.
func (g *Generator) walkOrder(ctx context.Context, tx Tx, o *order.Order, sh *shipment.Shipment, touched map[uuid.UUID]stockTouch) error {
	if g.chance(g.cfg.CancelRate) {
		return g.cancelOrder(ctx, tx, o, sh, touched)
	}

	procAt, ok, err := g.hop(o.CreatedAt(), 30*time.Minute, 60*time.Minute)
	if err != nil || !ok {
		return err
	}
	if err := g.advanceOrder(ctx, tx, o, order.StatusProcessing, procAt); err != nil {
		return err
	}

	shipAt, ok, err := g.hop(procAt, 24*time.Hour, 48*time.Hour)
	if err != nil || !ok {
		return err
	}
	if err := g.advanceOrder(ctx, tx, o, order.StatusShipped, shipAt); err != nil {
		return err
	}
	if err := sh.MarkInTransit(shipAt); err != nil {
		return errs.Wrap(err, "failed to mark shipment in transit")
	}
	if err := tx.UpdateShipment(ctx, sh); err != nil {
		return errs.Wrap(err, "failed to persist shipment transit")
	}

	delivAt, ok, err := g.hop(shipAt, 4*24*time.Hour, 10*24*time.Hour)
	if err != nil || !ok {
		return err
	}
	if err := g.advanceOrder(ctx, tx, o, order.StatusDelivered, delivAt); err != nil {
		return err
	}
	if err := sh.MarkDelivered(delivAt); err != nil {
		return errs.Wrap(err, "failed to mark shipment delivered")
	}
	if err := tx.UpdateShipment(ctx, sh); err != nil {
		return errs.Wrap(err, "failed to persist shipment delivery")
	}
	g.refreshPopularity()

	if err := g.commentDeliveredLines(ctx, tx, o, delivAt); err != nil {
		return err
	}

	if g.chance(g.cfg.RefundDeliveredPct) {
		refundAt, ok, err := g.hop(delivAt, 24*time.Hour, 14*24*time.Hour)
		if err != nil || !ok {
			return err
		}
		if err := g.advanceOrder(ctx, tx, o, order.StatusRefunded, refundAt); err != nil {
			return err
		}
		if err := sh.MarkReturned(refundAt); err != nil {
			return errs.Wrap(err, "failed to mark shipment returned")
		}
		if err := tx.UpdateShipment(ctx, sh); err != nil {
			return errs.Wrap(err, "failed to persist shipment return")
		}
	}
	return nil
}

func (g *Generator) cancelOrder(ctx context.Context, tx Tx, o *order.Order, sh *shipment.Shipment, touched map[uuid.UUID]stockTouch) error {
	cancelAt, ok, err := g.hop(o.CreatedAt(), time.Minute, 29*time.Minute)
	if err != nil || !ok {
		return err
	}
	if err := g.advanceOrder(ctx, tx, o, order.StatusCancelled, cancelAt); err != nil {
		return err
	}
	if err := sh.MarkFailed(cancelAt); err != nil {
		return errs.Wrap(err, "failed to mark shipment failed")
	}
	if err := tx.UpdateShipment(ctx, sh); err != nil {
		return errs.Wrap(err, "failed to persist shipment failure")
	}

	// cancellation puts every line back on the shelf
	for _, l := range o.Lines() {
		g.touch(touched, l.ProductID())
		if err := g.engine.Return(l.ProductID(), l.Quantity(), cancelAt); err != nil {
			return errs.Wrap(err, "failed to return stock")
		}
	}

	if g.chance(g.cfg.RefundCancelledPct) {
		refundAt, ok, err := g.hop(cancelAt, 24*time.Hour, 5*24*time.Hour)
		if err != nil || !ok {
			return err
		}
		if err := g.advanceOrder(ctx, tx, o, order.StatusRefunded, refundAt); err != nil {
			return err
		}
	}
	return nil
}

// hop draws the next lifecycle instant. ok=false means the window closed and
// the walk should stop where it is.
func (g *Generator) hop(prev time.Time, minDelta, maxDelta time.Duration) (time.Time, bool, error) {
	at, err := timerange.NextAfter(g.rng, prev, minDelta, maxDelta, g.window.End)
	if err != nil {
		return time.Time{}, false, errs.Wrap(err, "failed to draw lifecycle instant")
	}
	if at.After(g.window.End) {
		return time.Time{}, false, nil
	}
	return at, true, nil
}

func (g *Generator) advanceOrder(ctx context.Context, tx Tx, o *order.Order, next order.Status, at time.Time) error {
	if err := o.TransitionTo(next, at); err != nil {
		return errs.Wrap(err, "failed to transition order")
	}
	if err := tx.UpdateOrderStatus(ctx, o); err != nil {
		return errs.Wrap(err, fmt.Sprintf("failed to persist order status %s", next))
	}
	return nil
}

// commentDeliveredLines gives each delivered line an independent shot at a
// review within a week of delivery.
func (g *Generator) commentDeliveredLines(ctx context.Context, tx Tx, o *order.Order, delivAt time.Time) error {
	var comments []*comment.Comment
	for _, l := range o.Lines() {
		if !g.chance(g.cfg.CommentProbability) {
			continue
		}

		latest := g.window.Clamp(delivAt.Add(7 * 24 * time.Hour))
		at, err := timerange.RandomInstant(g.rng, delivAt, latest)
		if err != nil {
			return errs.Wrap(err, "failed to draw comment instant")
		}
		rating := g.drawRating()
		c, err := comment.NewComment(o.UserID(), l.ProductID(), rating, g.provider.ReviewText(rating), delivAt, at)
		if err != nil {
			return errs.Wrap(err, "failed to build comment")
		}
		comments = append(comments, c)
	}
	if len(comments) == 0 {
		return nil
	}

	if err := tx.InsertComments(ctx, comments); err != nil {
		return errs.Wrap(err, "failed to insert comments")
	}
	g.state.Comments = append(g.state.Comments, comments...)
	g.report.AddCreated("comments", len(comments))
	return nil
}

func (g *Generator) drawRating() int {
	total := 0
	for _, w := range ratingWeights {
		total += w
	}
	pick := g.rng.IntN(total)
	for i, w := range ratingWeights {
		if pick < w {
			return i + 1
		}
		pick -= w
	}
	return len(ratingWeights)
}

// flushStockChanges persists inventory levels and product status for every
// product the conversion touched, but only where something really changed.
func (g *Generator) flushStockChanges(ctx context.Context, tx Tx, touched map[uuid.UUID]stockTouch) error {
	for productID, before := range touched {
		inv := g.state.Inventories[productID]
		if inv.UpdatedAt().After(before.prevInvUpdate) {
			if err := tx.UpdateInventoryLevels(ctx, inv); err != nil {
				return errs.Wrap(err, "failed to persist inventory levels")
			}
		}
		p := g.state.ProductByID[productID]
		if p.UpdatedAt().After(before.prevProdUpdate) {
			if err := tx.UpdateProductStatus(ctx, p); err != nil {
				return errs.Wrap(err, "failed to persist product status")
			}
		}
	}
	return nil
}

func (g *Generator) trackingCode(carrier string) string {
	prefix := strings.ToUpper(carrier[:2])
	return fmt.Sprintf("%s-%08d", prefix, g.rng.IntN(100000000))
}
