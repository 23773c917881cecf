package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderType classifies a reservation as dine-in or takeaway.
// The values are the display strings the restaurant uses, and they are
// persisted as-is so older session documents stay readable.
type OrderType string

const (
	OrderTypeNone     OrderType = ""
	OrderTypeDineIn   OrderType = "La masă"
	OrderTypeTakeaway OrderType = "La pachet"
)

// Screen identifies the conversation screen a user is currently on.
type Screen string

const (
	ScreenMain            Screen = "main"
	ScreenMenu            Screen = "menu"
	ScreenQuantity        Screen = "quantity"
	ScreenReservationType Screen = "reservation_type"
	ScreenTime            Screen = "time"
	ScreenPeople          Screen = "people"
)

// Session is the per-user record of the in-progress order, the in-progress
// reservation and the last completed order. One session exists per user id;
// it is created lazily on first contact and never deleted.
type Session struct {
	// Cart maps catalog item id to accumulated quantity.
	Cart map[string]int `json:"cart"`

	// OrderType, Time and PartySize describe the in-progress reservation.
	// PartySize is only meaningful for dine-in; takeaway stores the fixed
	// default of 1 once a time slot is picked.
	OrderType OrderType `json:"order_type,omitempty"`
	Time      string    `json:"time,omitempty"`
	PartySize int       `json:"party_size,omitempty"`

	// Screen and PendingItem make the conversation resumable from the
	// store alone. PendingItem is the item whose quantity is being picked
	// while Screen == ScreenQuantity.
	Screen      Screen `json:"screen"`
	PendingItem string `json:"pending_item,omitempty"`

	// LastCompletedOrder is the snapshot taken by the most recent finalize.
	// At most one is retained; each finalize overwrites it.
	LastCompletedOrder *CompletedOrder `json:"last_completed_order,omitempty"`
}

// CompletedOrder is an immutable snapshot of a finalized session.
type CompletedOrder struct {
	ID          string          `json:"id"`
	OrderType   OrderType       `json:"order_type,omitempty"`
	Time        string          `json:"time,omitempty"`
	PartySize   int             `json:"party_size,omitempty"`
	Items       map[string]int  `json:"items"`
	Total       decimal.Decimal `json:"total"`
	CompletedAt time.Time       `json:"completed_at"`
}

// NewSession creates a fresh default session at the main screen.
func NewSession() *Session {
	return &Session{
		Cart:   make(map[string]int),
		Screen: ScreenMain,
	}
}

// HasActivity reports whether there is anything to finalize or cancel:
// a non-empty cart or a started reservation.
func (s *Session) HasActivity() bool {
	return len(s.Cart) > 0 || s.OrderType != OrderTypeNone
}

// ResetInProgress clears the cart and all reservation fields.
// LastCompletedOrder is deliberately untouched.
func (s *Session) ResetInProgress() {
	s.Cart = make(map[string]int)
	s.OrderType = OrderTypeNone
	s.Time = ""
	s.PartySize = 0
	s.PendingItem = ""
}

// Clone returns a deep copy so stores and callers cannot alias each
// other's maps.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	next := *s
	next.Cart = make(map[string]int, len(s.Cart))
	for id, qty := range s.Cart {
		next.Cart[id] = qty
	}
	if s.LastCompletedOrder != nil {
		snap := *s.LastCompletedOrder
		snap.Items = make(map[string]int, len(s.LastCompletedOrder.Items))
		for id, qty := range s.LastCompletedOrder.Items {
			snap.Items[id] = qty
		}
		next.LastCompletedOrder = &snap
	}
	return &next
}
