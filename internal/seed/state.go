package seed

import (
	"amaluz-seeder/internal/domain/address"
	"amaluz-seeder/internal/domain/cart"
	"amaluz-seeder/internal/domain/comment"
	"amaluz-seeder/internal/domain/discount"
	"amaluz-seeder/internal/domain/inventory"
	"amaluz-seeder/internal/domain/order"
	"amaluz-seeder/internal/domain/product"
	"amaluz-seeder/internal/domain/shipment"
	"amaluz-seeder/internal/domain/supplier"
	"amaluz-seeder/internal/domain/user"
	"amaluz-seeder/internal/seed/popularity"

	"github.com/google/uuid"
)

// State is the in-memory working set of a run. Later phases read earlier
// phases' output from here instead of querying the half-built database.
type State struct {
	Users     []*user.User
	UserByID  map[uuid.UUID]*user.User
	Suppliers []*supplier.Supplier

	Products    []*product.Product
	ProductByID map[uuid.UUID]*product.Product
	Inventories map[uuid.UUID]*inventory.Inventory // keyed by product id

	Discounts      []*discount.Discount
	DiscountUsages []DiscountUsage
	usedDiscounts  map[uuid.UUID]map[uuid.UUID]struct{} // user id -> discount ids

	CartLines []*cart.Line
	Addresses []*address.Address
	Orders    []*order.Order
	Shipments map[uuid.UUID]*shipment.Shipment // keyed by order id
	Comments  []*comment.Comment
}

func NewState() *State {
	return &State{
		UserByID:      make(map[uuid.UUID]*user.User),
		ProductByID:   make(map[uuid.UUID]*product.Product),
		Inventories:   make(map[uuid.UUID]*inventory.Inventory),
		Shipments:     make(map[uuid.UUID]*shipment.Shipment),
		usedDiscounts: make(map[uuid.UUID]map[uuid.UUID]struct{}),
	}
}

func (s *State) AddProduct(p *product.Product) {
	s.Products = append(s.Products, p)
	s.ProductByID[p.ID()] = p
}

// ActiveCustomers are the users eligible to shop.
func (s *State) ActiveCustomers() []*user.User {
	var out []*user.User
	for _, u := range s.Users {
		if u.IsActiveCustomer() {
			out = append(out, u)
		}
	}
	return out
}

func (s *State) DiscountUsedBy(userID, discountID uuid.UUID) bool {
	_, ok := s.usedDiscounts[userID][discountID]
	return ok
}

func (s *State) RecordDiscountUsage(usage DiscountUsage) {
	s.DiscountUsages = append(s.DiscountUsages, usage)
	byUser, ok := s.usedDiscounts[usage.UserID]
	if !ok {
		byUser = make(map[uuid.UUID]struct{})
		s.usedDiscounts[usage.UserID] = byUser
	}
	byUser[usage.DiscountID] = struct{}{}
}

// Signals folds the working set into the popularity scorer's input: units
// sold in delivered orders, comments rated 4+, cart-line appearances.
func (s *State) Signals() map[uuid.UUID]popularity.Signals {
	signals := make(map[uuid.UUID]popularity.Signals, len(s.Products))
	for _, p := range s.Products {
		signals[p.ID()] = popularity.Signals{}
	}

	for _, o := range s.Orders {
		if o.Status() != order.StatusDelivered {
			continue
		}
		for _, l := range o.Lines() {
			sig := signals[l.ProductID()]
			sig.UnitsSold += l.Quantity()
			signals[l.ProductID()] = sig
		}
	}
	for _, c := range s.Comments {
		if c.Rating() >= 4 {
			sig := signals[c.ProductID()]
			sig.PositiveComments++
			signals[c.ProductID()] = sig
		}
	}
	for _, l := range s.CartLines {
		sig := signals[l.ProductID()]
		sig.CartAdds++
		signals[l.ProductID()] = sig
	}
	return signals
}
