package popularity

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	weightSales    = decimal.NewFromFloat(0.6)
	weightComments = decimal.NewFromFloat(0.3)
	weightCartAdds = decimal.NewFromFloat(0.1)
	scale          = decimal.NewFromInt(10)
)

// Signals are the raw per-product counters the score is built from: units
// sold in delivered orders, comments rated 4 or better, cart-line
// appearances.
type Signals struct {
	UnitsSold        int
	PositiveComments int
	CartAdds         int
}

// Scorer turns a snapshot of signals into a [0, 10] score. Each signal is
// min-max normalized across the snapshot, then weighted sales-heavy so
// revenue dominates chatter.
type Scorer struct {
	signals map[uuid.UUID]Signals

	minSold, maxSold         int
	minComments, maxComments int
	minAdds, maxAdds         int
}

func NewScorer(signals map[uuid.UUID]Signals) *Scorer {
	s := &Scorer{signals: signals}
	first := true
	for _, sig := range signals {
		if first {
			s.minSold, s.maxSold = sig.UnitsSold, sig.UnitsSold
			s.minComments, s.maxComments = sig.PositiveComments, sig.PositiveComments
			s.minAdds, s.maxAdds = sig.CartAdds, sig.CartAdds
			first = false
			continue
		}
		s.minSold = min(s.minSold, sig.UnitsSold)
		s.maxSold = max(s.maxSold, sig.UnitsSold)
		s.minComments = min(s.minComments, sig.PositiveComments)
		s.maxComments = max(s.maxComments, sig.PositiveComments)
		s.minAdds = min(s.minAdds, sig.CartAdds)
		s.maxAdds = max(s.maxAdds, sig.CartAdds)
	}
	return s
}

func normalize(v, lo, hi int) decimal.Decimal {
	if hi == lo {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(v - lo)).Div(decimal.NewFromInt(int64(hi - lo)))
}

// Score returns the weighted popularity of the product, zero for products
// absent from the snapshot.
func (s *Scorer) Score(productID uuid.UUID) decimal.Decimal {
	sig, ok := s.signals[productID]
	if !ok {
		return decimal.Zero
	}
	score := normalize(sig.UnitsSold, s.minSold, s.maxSold).Mul(weightSales).
		Add(normalize(sig.PositiveComments, s.minComments, s.maxComments).Mul(weightComments)).
		Add(normalize(sig.CartAdds, s.minAdds, s.maxAdds).Mul(weightCartAdds))
	return score.Mul(scale)
}

// Rank orders every product in the snapshot by score descending, breaking
// ties by product id so the ordering is total and reproducible.
func (s *Scorer) Rank() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s.signals))
	for id := range s.signals {
		ids = append(ids, id)
	}
	scores := make(map[uuid.UUID]decimal.Decimal, len(ids))
	for _, id := range ids {
		scores[id] = s.Score(id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := scores[ids[i]], scores[ids[j]]
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return ids[i].String() < ids[j].String()
	})
	return ids
}
