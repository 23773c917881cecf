// Package reservation implements the pure reservation transitions of a
// session: order type, time slot and party size.
package reservation

import (
	"fmt"

	"github.com/munteanooo/telegram-restaurant-bot/pkg/domain"
)

// DefaultTakeawayPartySize is auto-applied when a takeaway order picks a
// time slot; takeaway has no people-count prompt.
const DefaultTakeawayPartySize = 1

// MaxOfferedPartySize bounds the people keyboard. Larger values are still
// accepted if the delivery channel sends them; only non-positive sizes are
// rejected.
const MaxOfferedPartySize = 10

var slots = []string{
	"12:00", "13:00", "14:00", "15:00", "16:00",
	"17:00", "18:00", "19:00", "20:00", "21:00",
}

// Slots returns the fixed set of reservable time slots, in display order.
func Slots() []string {
	out := make([]string, len(slots))
	copy(out, slots)
	return out
}

// ValidSlot reports whether the given time is one of the offered slots.
func ValidSlot(slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

// SetOrderType records whether the order is dine-in or takeaway.
func SetOrderType(session *domain.Session, orderType domain.OrderType) error {
	switch orderType {
	case domain.OrderTypeDineIn, domain.OrderTypeTakeaway:
		session.OrderType = orderType
		return nil
	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidOrderType, orderType)
	}
}

// SetTime records the reservation time slot. For takeaway orders the flow
// completes here: the party size is set to the fixed default and the
// returned flag is true. Dine-in orders still need SetPartySize.
func SetTime(session *domain.Session, slot string) (complete bool, err error) {
	if !ValidSlot(slot) {
		return false, fmt.Errorf("%w: %q", domain.ErrInvalidTimeSlot, slot)
	}
	session.Time = slot

	if session.OrderType == domain.OrderTypeTakeaway {
		session.PartySize = DefaultTakeawayPartySize
		return true, nil
	}
	return false, nil
}

// SetPartySize records the number of people for a dine-in reservation.
func SetPartySize(session *domain.Session, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidPartySize, n)
	}
	session.PartySize = n
	return nil
}
