package domain

import "errors"

// ErrSessionNotFound is returned when a user id has no stored session.
var ErrSessionNotFound = errors.New("session not found")

// ErrItemNotFound is returned when an item id cannot be resolved in the catalog.
var ErrItemNotFound = errors.New("catalog item not found")

// ErrInvalidQuantity is returned for non-positive quantities.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// ErrInvalidTimeSlot is returned when a time is not one of the offered slots.
var ErrInvalidTimeSlot = errors.New("invalid reservation time slot")

// ErrInvalidPartySize is returned for non-positive party sizes.
var ErrInvalidPartySize = errors.New("party size must be a positive integer")

// ErrInvalidOrderType is returned for order types other than dine-in or takeaway.
var ErrInvalidOrderType = errors.New("invalid order type")

// ErrUnknownAction is returned when an action code is not valid for the
// user's current screen.
var ErrUnknownAction = errors.New("unknown action")
