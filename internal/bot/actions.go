package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/munteanooo/telegram-restaurant-bot/pkg/domain"
)

// Action codes form a fixed grammar: bare tokens plus parameterized tokens
// item_<id>, qty_<id>_<int>, time_<HH:MM> and people_<int>.
const (
	codeMenu               = "menu"
	codeReservation        = "reservation"
	codeFinalize           = "finalize_order"
	codeCancel             = "cancel_reservation"
	codeStatus             = "order_status"
	codeContacts           = "contacts"
	codeBackToMain         = "back_to_main"
	codeBack               = "back"
	codeReservationTable   = "reservation_table"
	codeReservationTakeout = "reservation_takeaway"

	prefixItem     = "item_"
	prefixQuantity = "qty_"
	prefixTime     = "time_"
	prefixPeople   = "people_"
)

type actionKind int

const (
	actionUnknown actionKind = iota
	actionMenu
	actionReservation
	actionFinalize
	actionCancel
	actionStatus
	actionContacts
	actionBackToMain
	actionBack
	actionReservationTable
	actionReservationTakeout
	actionItem
	actionQuantity
	actionTime
	actionPeople
)

// action is a decoded action code.
type action struct {
	kind   actionKind
	itemID string
	qty    int
	slot   string
	people int
}

// parseAction decodes an incoming action code. It only validates the shape
// of the code; whether the action is valid for the current screen is the
// machine's call.
func parseAction(code string) (action, error) {
	switch code {
	case codeMenu:
		return action{kind: actionMenu}, nil
	case codeReservation:
		return action{kind: actionReservation}, nil
	case codeFinalize:
		return action{kind: actionFinalize}, nil
	case codeCancel:
		return action{kind: actionCancel}, nil
	case codeStatus:
		return action{kind: actionStatus}, nil
	case codeContacts:
		return action{kind: actionContacts}, nil
	case codeBackToMain:
		return action{kind: actionBackToMain}, nil
	case codeBack:
		return action{kind: actionBack}, nil
	case codeReservationTable:
		return action{kind: actionReservationTable}, nil
	case codeReservationTakeout:
		return action{kind: actionReservationTakeout}, nil
	}

	switch {
	case strings.HasPrefix(code, prefixItem):
		itemID := strings.TrimPrefix(code, prefixItem)
		if itemID == "" {
			return action{}, fmt.Errorf("%w: %q", domain.ErrUnknownAction, code)
		}
		return action{kind: actionItem, itemID: itemID}, nil

	case strings.HasPrefix(code, prefixQuantity):
		// Item ids may contain underscores; the quantity is the last segment.
		rest := strings.TrimPrefix(code, prefixQuantity)
		sep := strings.LastIndex(rest, "_")
		if sep <= 0 || sep == len(rest)-1 {
			return action{}, fmt.Errorf("%w: %q", domain.ErrUnknownAction, code)
		}
		qty, err := strconv.Atoi(rest[sep+1:])
		if err != nil {
			return action{}, fmt.Errorf("%w: %q", domain.ErrUnknownAction, code)
		}
		return action{kind: actionQuantity, itemID: rest[:sep], qty: qty}, nil

	case strings.HasPrefix(code, prefixTime):
		slot := strings.TrimPrefix(code, prefixTime)
		if slot == "" {
			return action{}, fmt.Errorf("%w: %q", domain.ErrUnknownAction, code)
		}
		return action{kind: actionTime, slot: slot}, nil

	case strings.HasPrefix(code, prefixPeople):
		n, err := strconv.Atoi(strings.TrimPrefix(code, prefixPeople))
		if err != nil {
			return action{}, fmt.Errorf("%w: %q", domain.ErrUnknownAction, code)
		}
		return action{kind: actionPeople, people: n}, nil
	}

	return action{}, fmt.Errorf("%w: %q", domain.ErrUnknownAction, code)
}

// ActionKind classifies an action code for metrics labels: the bare token
// itself, or the family ("item", "qty", "time", "people") for
// parameterized codes. Malformed codes classify as "unknown".
func ActionKind(code string) string {
	act, err := parseAction(code)
	if err != nil {
		return "unknown"
	}
	switch act.kind {
	case actionItem:
		return "item"
	case actionQuantity:
		return "qty"
	case actionTime:
		return "time"
	case actionPeople:
		return "people"
	default:
		return code
	}
}
