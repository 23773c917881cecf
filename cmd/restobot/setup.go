package main

import (
	"fmt"
	"time"

	"log/slog"

	backend "github.com/redis/go-redis/v9"

	"github.com/munteanooo/telegram-restaurant-bot/internal/bot"
	"github.com/munteanooo/telegram-restaurant-bot/internal/config"
	"github.com/munteanooo/telegram-restaurant-bot/internal/logging"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/adapters/file"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/adapters/memory"
	redisadapter "github.com/munteanooo/telegram-restaurant-bot/pkg/adapters/redis"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/catalog"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/ports"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/session"
)

// buildLogger creates the process logger from the configured level.
func buildLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}

// buildCatalog loads the configured catalog file or falls back to the
// built-in menu.
func buildCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogFile == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.CatalogFile)
}

// buildStore creates the configured session store. It returns the store,
// an optional distributed locker and a close function.
func buildStore(cfg *config.Config) (ports.SessionStore, ports.DistributedLocker, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store.Backend {
	case config.BackendMemory:
		return memory.NewStore(), nil, noop, nil

	case config.BackendFile:
		return file.NewStore(cfg.Store.Path), nil, noop, nil

	case config.BackendRedis:
		rc := cfg.Store.Redis
		client := backend.NewClient(&backend.Options{
			Addr:     rc.Addr,
			Password: rc.Password,
			DB:       rc.DB,
		})
		opts := []redisadapter.Option{}
		if rc.Prefix != "" {
			opts = append(opts, redisadapter.WithPrefix(rc.Prefix))
		}
		if rc.TTL > 0 {
			opts = append(opts, redisadapter.WithTTL(time.Duration(rc.TTL)))
		}
		store := redisadapter.NewFromClient(client, opts...)

		var locker ports.DistributedLocker
		if rc.Lock {
			locker = redisadapter.NewLocker(client, rc.Prefix)
		}
		return store, locker, store.Close, nil
	}
	return nil, nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

// buildMachine wires the full core: catalog, store, session manager, bot.
func buildMachine(cfg *config.Config, logger *slog.Logger) (*bot.Machine, func() error, error) {
	cat, err := buildCatalog(cfg)
	if err != nil {
		return nil, nil, err
	}

	store, locker, closeStore, err := buildStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	managerOpts := []session.Option{session.WithLogger(logger)}
	if locker != nil {
		managerOpts = append(managerOpts, session.WithLocker(locker))
	}
	sessions := session.NewManager(store, managerOpts...)

	machine := bot.New(sessions, cat,
		bot.WithLogger(logger),
		bot.WithContacts(contactsFromConfig(cfg)),
	)
	return machine, closeStore, nil
}

// contactsFromConfig overlays configured contact fields on the built-in card.
func contactsFromConfig(cfg *config.Config) bot.Contacts {
	contacts := bot.DefaultContacts()
	if cfg.Contacts.Manager != "" {
		contacts.Manager = cfg.Contacts.Manager
	}
	if cfg.Contacts.Phone != "" {
		contacts.Phone = cfg.Contacts.Phone
	}
	if cfg.Contacts.Email != "" {
		contacts.Email = cfg.Contacts.Email
	}
	if cfg.Contacts.Hours != "" {
		contacts.Hours = cfg.Contacts.Hours
	}
	if cfg.Contacts.Address != "" {
		contacts.Address = cfg.Contacts.Address
	}
	return contacts
}
