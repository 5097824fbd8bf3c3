// Package cart holds the client-side shopping cart: an ordered set of
// product lines owned by this session, never synchronized with a server
// cart entity.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/mashood007/fp-store-front/pkg/storeapi"
)

// Line is one product-plus-quantity entry. Quantity is always >= 1 while
// the line exists.
type Line struct {
	Product  storeapi.Product
	Quantity int
}

// Subtotal is price times quantity for this line.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Store is the explicit cart object injected into the UI layer. Mutation
// happens through its methods only, so every mutation site is enumerable.
// A mutex guards it because UI commands run off the update loop.
type Store struct {
	mu    sync.Mutex
	lines []Line
}

// NewStore returns an empty cart.
func NewStore() *Store {
	return &Store{}
}

// Add merges quantity into an existing line for the product, or appends a
// new line. A quantity below 1 is treated as 1. No stock check happens
// here; availability is the backend's concern.
func (s *Store) Add(product storeapi.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID {
			s.lines[i].Quantity += quantity
			return
		}
	}
	s.lines = append(s.lines, Line{Product: product, Quantity: quantity})
}

// UpdateQuantity sets the line's quantity. Zero or negative removes the
// line. Unknown product ids no-op.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		return
	}
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = quantity
			return
		}
	}
}

// Remove drops the line unconditionally. Idempotent.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

func (s *Store) removeLocked(productID string) {
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Idempotent; checkout calls it exactly once after
// payment completion succeeds.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Total computes the cart total fresh on every call.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Count is the summed quantity across lines, used for the badge.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

// Lines returns a snapshot copy in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]Line, len(s.lines))
	copy(snapshot, s.lines)
	return snapshot
}

// OrderItems converts the cart into the order creation payload.
func (s *Store) OrderItems() []storeapi.OrderItemInput {
	lines := s.Lines()
	items := make([]storeapi.OrderItemInput, 0, len(lines))
	for _, line := range lines {
		items = append(items, storeapi.OrderItemInput{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
		})
	}
	return items
}
