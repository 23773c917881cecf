package order_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munteanooo/telegram-restaurant-bot/pkg/catalog"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/domain"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/order"
)

func TestAdd_AccumulatesQuantities(t *testing.T) {
	acc := order.NewAccumulator(catalog.Default())
	session := domain.NewSession()

	require.NoError(t, acc.Add(session, "pizza_margherita", 2))
	require.NoError(t, acc.Add(session, "pizza_margherita", 3))

	// Additive, not overwrite.
	assert.Equal(t, 5, session.Cart["pizza_margherita"])

	total, err := acc.Total(session)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromFloat(125.0)), "expected 25.0*5 = 125.0, got %s", total)
}

func TestAdd_RejectsInvalidQuantity(t *testing.T) {
	acc := order.NewAccumulator(catalog.Default())
	session := domain.NewSession()

	assert.ErrorIs(t, acc.Add(session, "pizza_margherita", 0), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, acc.Add(session, "pizza_margherita", -3), domain.ErrInvalidQuantity)
	assert.Empty(t, session.Cart, "failed add must not touch the cart")
}

func TestAdd_RejectsUnknownItem(t *testing.T) {
	acc := order.NewAccumulator(catalog.Default())
	session := domain.NewSession()

	assert.ErrorIs(t, acc.Add(session, "sushi_dragon", 1), domain.ErrItemNotFound)
	assert.Empty(t, session.Cart)
}

func TestTotal_MixedCart(t *testing.T) {
	acc := order.NewAccumulator(catalog.Default())
	session := domain.NewSession()

	require.NoError(t, acc.Add(session, "salata_caesar", 2)) // 36.0
	require.NoError(t, acc.Add(session, "cheesecake", 1))    // 15.0
	require.NoError(t, acc.Add(session, "friptura_vita", 1)) // 35.0

	total, err := acc.Total(session)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromFloat(86.0)), "got %s", total)
}

func TestTotal_EmptyCartIsZero(t *testing.T) {
	acc := order.NewAccumulator(catalog.Default())
	session := domain.NewSession()

	total, err := acc.Total(session)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestTotal_FailsWhenItemLeftCatalog(t *testing.T) {
	// Build a shrinking catalog: the cart references an item the current
	// catalog no longer carries.
	small, err := catalog.New([]domain.CatalogItem{
		{ID: "cheesecake", Name: "Cheesecake", Price: decimal.NewFromFloat(15.0)},
	})
	require.NoError(t, err)

	acc := order.NewAccumulator(small)
	session := domain.NewSession()
	session.Cart["pizza_margherita"] = 2
	session.Cart["cheesecake"] = 1

	_, err = acc.Total(session)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestSubtotals_FollowMenuOrder(t *testing.T) {
	acc := order.NewAccumulator(catalog.Default())
	session := domain.NewSession()
	require.NoError(t, acc.Add(session, "cheesecake", 1))
	require.NoError(t, acc.Add(session, "pizza_margherita", 1))

	lines, err := acc.Subtotals(session)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "pizza_margherita", lines[0].Item.ID)
	assert.Equal(t, "cheesecake", lines[1].Item.ID)
}

func TestClear(t *testing.T) {
	acc := order.NewAccumulator(catalog.Default())
	session := domain.NewSession()
	require.NoError(t, acc.Add(session, "supa_pui", 4))

	acc.Clear(session)
	assert.Empty(t, session.Cart)
}
