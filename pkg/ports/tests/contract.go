package tests

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/munteanooo/telegram-restaurant-bot/pkg/domain"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/ports"
)

// RunSessionStoreContract is a reusable suite verifying that an adapter
// complies with ports.SessionStore semantics.
func RunSessionStoreContract(t *testing.T, store ports.SessionStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := store.Load(ctx, "missing-user")
		if err != domain.ErrSessionNotFound {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("Save_Load_RoundTrip", func(t *testing.T) {
		session := domain.NewSession()
		session.Cart["pizza_margherita"] = 2
		session.OrderType = domain.OrderTypeDineIn
		session.Time = "18:00"
		session.PartySize = 4
		session.Screen = domain.ScreenTime
		session.LastCompletedOrder = &domain.CompletedOrder{
			ID:          "order-1",
			OrderType:   domain.OrderTypeTakeaway,
			Time:        "12:00",
			PartySize:   1,
			Items:       map[string]int{"cheesecake": 3},
			Total:       decimal.NewFromFloat(45.0),
			CompletedAt: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
		}

		if err := store.Save(ctx, "user-1", session); err != nil {
			t.Fatalf("failed to save session: %v", err)
		}

		loaded, err := store.Load(ctx, "user-1")
		if err != nil {
			t.Fatalf("failed to load session: %v", err)
		}
		if loaded.Cart["pizza_margherita"] != 2 {
			t.Errorf("cart quantity mismatch: got %d", loaded.Cart["pizza_margherita"])
		}
		if loaded.OrderType != domain.OrderTypeDineIn {
			t.Errorf("order type mismatch: got %q", loaded.OrderType)
		}
		if loaded.Time != "18:00" || loaded.PartySize != 4 {
			t.Errorf("reservation mismatch: time=%q people=%d", loaded.Time, loaded.PartySize)
		}
		if loaded.Screen != domain.ScreenTime {
			t.Errorf("screen mismatch: got %q", loaded.Screen)
		}
		if loaded.LastCompletedOrder == nil {
			t.Fatal("last completed order lost in round trip")
		}
		if loaded.LastCompletedOrder.Items["cheesecake"] != 3 {
			t.Errorf("snapshot items mismatch: %v", loaded.LastCompletedOrder.Items)
		}
		if !loaded.LastCompletedOrder.Total.Equal(decimal.NewFromFloat(45.0)) {
			t.Errorf("snapshot total mismatch: got %s", loaded.LastCompletedOrder.Total)
		}
		if !loaded.LastCompletedOrder.CompletedAt.Equal(session.LastCompletedOrder.CompletedAt) {
			t.Errorf("snapshot timestamp mismatch: got %s", loaded.LastCompletedOrder.CompletedAt)
		}
	})

	t.Run("Save_Isolates_Caller_Mutations", func(t *testing.T) {
		session := domain.NewSession()
		session.Cart["supa_pui"] = 1
		if err := store.Save(ctx, "user-2", session); err != nil {
			t.Fatalf("failed to save session: %v", err)
		}

		// Mutating after save must not leak into the store.
		session.Cart["supa_pui"] = 99

		loaded, err := store.Load(ctx, "user-2")
		if err != nil {
			t.Fatalf("failed to load session: %v", err)
		}
		if loaded.Cart["supa_pui"] != 1 {
			t.Errorf("store aliased caller map: got %d", loaded.Cart["supa_pui"])
		}
	})

	t.Run("List", func(t *testing.T) {
		ids, err := store.List(ctx)
		if err != nil {
			t.Fatalf("failed to list sessions: %v", err)
		}
		lookup := make(map[string]bool, len(ids))
		for _, id := range ids {
			lookup[id] = true
		}
		for _, want := range []string{"user-1", "user-2"} {
			if !lookup[want] {
				t.Errorf("user %s missing from list %v", want, ids)
			}
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := store.Delete(ctx, "user-1"); err != nil {
			t.Fatalf("failed to delete session: %v", err)
		}
		if _, err := store.Load(ctx, "user-1"); err != domain.ErrSessionNotFound {
			t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
		}
		// Deleting an absent session is not an error.
		if err := store.Delete(ctx, "user-1"); err != nil {
			t.Errorf("delete of missing session should be a no-op, got %v", err)
		}
	})
}
