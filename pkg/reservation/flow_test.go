package reservation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munteanooo/telegram-restaurant-bot/pkg/domain"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/reservation"
)

func TestSetOrderType(t *testing.T) {
	session := domain.NewSession()

	require.NoError(t, reservation.SetOrderType(session, domain.OrderTypeDineIn))
	assert.Equal(t, domain.OrderTypeDineIn, session.OrderType)

	require.NoError(t, reservation.SetOrderType(session, domain.OrderTypeTakeaway))
	assert.Equal(t, domain.OrderTypeTakeaway, session.OrderType)

	assert.ErrorIs(t, reservation.SetOrderType(session, "delivery"), domain.ErrInvalidOrderType)
	assert.ErrorIs(t, reservation.SetOrderType(session, domain.OrderTypeNone), domain.ErrInvalidOrderType)
}

func TestSetTime_DineIn_RequiresSeparatePartySize(t *testing.T) {
	session := domain.NewSession()
	require.NoError(t, reservation.SetOrderType(session, domain.OrderTypeDineIn))

	complete, err := reservation.SetTime(session, "18:00")
	require.NoError(t, err)

	assert.False(t, complete, "dine-in must still prompt for party size")
	assert.Equal(t, "18:00", session.Time)
	assert.Zero(t, session.PartySize, "party size must not be set until chosen")

	require.NoError(t, reservation.SetPartySize(session, 4))
	assert.Equal(t, 4, session.PartySize)
}

func TestSetTime_Takeaway_AutoCompletes(t *testing.T) {
	session := domain.NewSession()
	require.NoError(t, reservation.SetOrderType(session, domain.OrderTypeTakeaway))

	complete, err := reservation.SetTime(session, "12:00")
	require.NoError(t, err)

	assert.True(t, complete, "takeaway completes at the time pick")
	assert.Equal(t, reservation.DefaultTakeawayPartySize, session.PartySize)
}

func TestSetTime_RejectsUnknownSlot(t *testing.T) {
	session := domain.NewSession()
	require.NoError(t, reservation.SetOrderType(session, domain.OrderTypeDineIn))

	_, err := reservation.SetTime(session, "11:30")
	assert.ErrorIs(t, err, domain.ErrInvalidTimeSlot)
	assert.Empty(t, session.Time)
}

func TestSetPartySize_RejectsNonPositive(t *testing.T) {
	session := domain.NewSession()

	assert.ErrorIs(t, reservation.SetPartySize(session, 0), domain.ErrInvalidPartySize)
	assert.ErrorIs(t, reservation.SetPartySize(session, -2), domain.ErrInvalidPartySize)
	assert.Zero(t, session.PartySize)
}

func TestSlots_FixedSet(t *testing.T) {
	slots := reservation.Slots()
	require.Len(t, slots, 10)
	assert.Equal(t, "12:00", slots[0])
	assert.Equal(t, "21:00", slots[len(slots)-1])

	for _, slot := range slots {
		assert.True(t, reservation.ValidSlot(slot))
	}

	// Returned slice is a copy; mutating it must not corrupt the set.
	slots[0] = "03:00"
	assert.True(t, reservation.ValidSlot("12:00"))
	assert.False(t, reservation.ValidSlot("03:00"))
}
