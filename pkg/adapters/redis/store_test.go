package redis_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"

	redisadapter "github.com/munteanooo/telegram-restaurant-bot/pkg/adapters/redis"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/ports/tests"
)

func TestRedisStore_Contract(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	store := redisadapter.NewFromClient(client)
	tests.RunSessionStoreContract(t, store)
}
