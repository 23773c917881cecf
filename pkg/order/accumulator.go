// Package order implements the pure cart operations of a session:
// validated accumulation, subtotal/total computation and clearing.
package order

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/munteanooo/telegram-restaurant-bot/pkg/catalog"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/domain"
)

// Line is one priced cart entry.
type Line struct {
	Item     domain.CatalogItem
	Quantity int
	Subtotal decimal.Decimal
}

// Accumulator applies cart operations against a fixed catalog.
type Accumulator struct {
	catalog *catalog.Catalog
}

// NewAccumulator creates an accumulator bound to the given catalog.
func NewAccumulator(c *catalog.Catalog) *Accumulator {
	return &Accumulator{catalog: c}
}

// Add increments the cart quantity for an item. Quantities accumulate,
// they never replace. The item must exist in the catalog and the quantity
// must be positive; bad input leaves the cart untouched.
func (a *Accumulator) Add(session *domain.Session, itemID string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, quantity)
	}
	if _, err := a.catalog.Lookup(itemID); err != nil {
		return err
	}

	if session.Cart == nil {
		session.Cart = make(map[string]int)
	}
	session.Cart[itemID] += quantity
	return nil
}

// Subtotals prices every cart entry. Entries follow catalog menu order so
// receipts render deterministically. It fails with domain.ErrItemNotFound
// if a cart id is no longer in the catalog.
func (a *Accumulator) Subtotals(session *domain.Session) ([]Line, error) {
	return a.lines(session.Cart)
}

// SnapshotLines prices the items of a completed-order snapshot.
func (a *Accumulator) SnapshotLines(snapshot *domain.CompletedOrder) ([]Line, error) {
	if snapshot == nil {
		return nil, nil
	}
	return a.lines(snapshot.Items)
}

func (a *Accumulator) lines(cart map[string]int) ([]Line, error) {
	if len(cart) == 0 {
		return nil, nil
	}

	lines := make([]Line, 0, len(cart))
	seen := 0
	for _, item := range a.catalog.Items() {
		qty, ok := cart[item.ID]
		if !ok {
			continue
		}
		seen++
		lines = append(lines, Line{
			Item:     item,
			Quantity: qty,
			Subtotal: item.Price.Mul(decimal.NewFromInt(int64(qty))),
		})
	}

	if seen != len(cart) {
		// At least one cart id has left the catalog; name the first one.
		ids := make([]string, 0, len(cart))
		for id := range cart {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			if !a.catalog.Has(id) {
				return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
			}
		}
	}
	return lines, nil
}

// Total sums the priced cart entries.
func (a *Accumulator) Total(session *domain.Session) (decimal.Decimal, error) {
	lines, err := a.Subtotals(session)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal)
	}
	return total, nil
}

// Clear empties the cart in place.
func (a *Accumulator) Clear(session *domain.Session) {
	session.Cart = make(map[string]int)
}
