package memory_test

import (
	"testing"

	"github.com/munteanooo/telegram-restaurant-bot/pkg/adapters/memory"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/ports/tests"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	tests.RunSessionStoreContract(t, store)
}
