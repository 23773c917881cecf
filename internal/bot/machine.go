// Package bot implements the interaction state machine of the ordering
// assistant. It maps an incoming (user, action code) pair to a persisted
// session mutation and a reply payload for the delivery channel.
package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/munteanooo/telegram-restaurant-bot/internal/logging"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/catalog"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/domain"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/order"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/ports"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/reservation"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/session"
)

const (
	textReservationPrompt = "Rezervare loc:\n\nAlegeți tipul comenzii:"
	textTimeDineIn        = "Alegeți ora pentru rezervare:"
	textTimeTakeaway      = "Alegeți ora pentru ridicare:"
	textPeoplePrompt      = "Alegeți numărul de persoane:"
	textCancelled         = "Rezervarea a fost anulată complet!"
	textNothingToFinalize = "Nu aveți nicio comandă sau rezervare activă!"
	textUnknownAction     = "Acțiune necunoscută. Vă rugăm să alegeți o opțiune din meniul de mai jos:"
	textInvalidInput      = "Valoare invalidă. Vă rugăm să alegeți o opțiune din meniul de mai jos:"
)

// Contacts is the restaurant's static contact card.
type Contacts struct {
	Manager string
	Phone   string
	Email   string
	Hours   string
	Address string
}

// DefaultContacts returns the restaurant's contact card.
func DefaultContacts() Contacts {
	return Contacts{
		Manager: "Manager Restaurant Cezar",
		Phone:   "+40 123 456 789",
		Email:   "manager@restaurantcezar.ro",
		Hours:   "12:00 - 23:00",
		Address: "Str. Exemplu nr. 1, București",
	}
}

// Machine is the orchestrator: it loads the session, applies the action,
// persists the result and builds the reply. The whole cycle for one user
// runs under that user's session lock.
type Machine struct {
	sessions *session.Manager
	catalog  *catalog.Catalog
	cart     *order.Accumulator
	contacts Contacts
	logger   *slog.Logger

	now   func() time.Time
	newID func() string
}

// Option configures the Machine.
type Option func(*Machine)

// WithLogger sets the machine's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithContacts overrides the restaurant contact card.
func WithContacts(c Contacts) Option {
	return func(m *Machine) {
		m.contacts = c
	}
}

// WithClock overrides the wall clock (tests).
func WithClock(now func() time.Time) Option {
	return func(m *Machine) {
		m.now = now
	}
}

// WithIDGenerator overrides the completed-order id generator (tests).
func WithIDGenerator(newID func() string) Option {
	return func(m *Machine) {
		m.newID = newID
	}
}

// New creates a machine over the given session manager and catalog.
func New(sessions *session.Manager, cat *catalog.Catalog, opts ...Option) *Machine {
	m := &Machine{
		sessions: sessions,
		catalog:  cat,
		cart:     order.NewAccumulator(cat),
		contacts: DefaultContacts(),
		logger:   logging.NewNop(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Welcome returns the first-contact reply (the main menu). It creates the
// user's session if none exists yet.
func (m *Machine) Welcome(ctx context.Context, userID string) (*domain.Reply, error) {
	if _, err := m.sessions.LoadOrStart(ctx, userID); err != nil {
		return nil, err
	}
	return m.replyMain(), nil
}

// Handle applies one action for one user. User-input problems (unknown
// actions, invalid quantities) come back as a normal reply carrying the
// main-menu affordances; store and catalog failures are returned as errors
// and leave the persisted session untouched.
func (m *Machine) Handle(ctx context.Context, userID, code string) (*domain.Reply, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id cannot be empty")
	}

	var reply *domain.Reply
	err := m.sessions.WithLock(ctx, userID, func(ctx context.Context) error {
		// Direct store access: the per-user lock is already held for the
		// whole load-modify-save cycle.
		store := m.sessions.Store()

		s, err := store.Load(ctx, userID)
		if errors.Is(err, domain.ErrSessionNotFound) {
			s = domain.NewSession()
			if err := store.Save(ctx, userID, s); err != nil {
				return fmt.Errorf("failed to initialize session: %w", err)
			}
		} else if err != nil {
			return err
		}

		reply, err = m.apply(ctx, store, userID, s, code)
		return err
	})
	if err != nil {
		m.logger.Error("action failed", "user_id", userID, "action", code, "err", err)
		return nil, err
	}

	m.logger.Debug("action handled", "user_id", userID, "action", code)
	return reply, nil
}

func (m *Machine) apply(ctx context.Context, store ports.SessionStore, userID string, s *domain.Session, code string) (*domain.Reply, error) {
	act, err := parseAction(code)
	if err != nil {
		return m.recoverToMain(ctx, store, userID, s, textUnknownAction)
	}

	switch s.Screen {
	case domain.ScreenMain, "":
		return m.applyMain(ctx, store, userID, s, act)
	case domain.ScreenMenu:
		return m.applyMenu(ctx, store, userID, s, act)
	case domain.ScreenQuantity:
		return m.applyQuantity(ctx, store, userID, s, act)
	case domain.ScreenReservationType:
		return m.applyReservationType(ctx, store, userID, s, act)
	case domain.ScreenTime:
		return m.applyTime(ctx, store, userID, s, act)
	case domain.ScreenPeople:
		return m.applyPeople(ctx, store, userID, s, act)
	}
	return m.recoverToMain(ctx, store, userID, s, textUnknownAction)
}

func (m *Machine) applyMain(ctx context.Context, store ports.SessionStore, userID string, s *domain.Session, act action) (*domain.Reply, error) {
	switch act.kind {
	case actionMenu:
		return m.goTo(ctx, store, userID, s, domain.ScreenMenu)

	case actionReservation:
		return m.goTo(ctx, store, userID, s, domain.ScreenReservationType)

	case actionFinalize:
		return m.finalize(ctx, store, userID, s)

	case actionCancel:
		s.ResetInProgress()
		s.Screen = domain.ScreenMain
		if err := store.Save(ctx, userID, s); err != nil {
			return nil, err
		}
		return &domain.Reply{Text: textCancelled, Buttons: m.mainButtons()}, nil

	case actionStatus:
		return m.status(s)

	case actionContacts:
		return &domain.Reply{Text: contactsText(m.contacts), Buttons: m.mainButtons()}, nil
	}
	return m.recoverToMain(ctx, store, userID, s, textUnknownAction)
}

func (m *Machine) applyMenu(ctx context.Context, store ports.SessionStore, userID string, s *domain.Session, act action) (*domain.Reply, error) {
	switch act.kind {
	case actionItem:
		item, err := m.catalog.Lookup(act.itemID)
		if err != nil {
			return nil, err
		}
		s.Screen = domain.ScreenQuantity
		s.PendingItem = item.ID
		if err := store.Save(ctx, userID, s); err != nil {
			return nil, err
		}
		return &domain.Reply{
			Text:    itemText(item, s.Cart[item.ID]),
			Buttons: m.quantityButtons(item.ID),
		}, nil

	case actionBack, actionBackToMain:
		return m.goTo(ctx, store, userID, s, domain.ScreenMain)
	}
	return m.recoverToMain(ctx, store, userID, s, textUnknownAction)
}

func (m *Machine) applyQuantity(ctx context.Context, store ports.SessionStore, userID string, s *domain.Session, act action) (*domain.Reply, error) {
	switch act.kind {
	case actionQuantity:
		if err := m.cart.Add(s, act.itemID, act.qty); err != nil {
			if errors.Is(err, domain.ErrInvalidQuantity) {
				return m.recoverToMain(ctx, store, userID, s, textInvalidInput)
			}
			return nil, err
		}
		return m.goTo(ctx, store, userID, s, domain.ScreenMenu)

	case actionMenu, actionBack:
		return m.goTo(ctx, store, userID, s, domain.ScreenMenu)
	}
	return m.recoverToMain(ctx, store, userID, s, textUnknownAction)
}

func (m *Machine) applyReservationType(ctx context.Context, store ports.SessionStore, userID string, s *domain.Session, act action) (*domain.Reply, error) {
	switch act.kind {
	case actionReservationTable, actionReservationTakeout:
		orderType := domain.OrderTypeDineIn
		if act.kind == actionReservationTakeout {
			orderType = domain.OrderTypeTakeaway
		}
		if err := reservation.SetOrderType(s, orderType); err != nil {
			return m.recoverToMain(ctx, store, userID, s, textInvalidInput)
		}
		return m.goTo(ctx, store, userID, s, domain.ScreenTime)

	case actionBack, actionBackToMain:
		return m.goTo(ctx, store, userID, s, domain.ScreenMain)
	}
	return m.recoverToMain(ctx, store, userID, s, textUnknownAction)
}

func (m *Machine) applyTime(ctx context.Context, store ports.SessionStore, userID string, s *domain.Session, act action) (*domain.Reply, error) {
	switch act.kind {
	case actionTime:
		complete, err := reservation.SetTime(s, act.slot)
		if err != nil {
			return m.recoverToMain(ctx, store, userID, s, textInvalidInput)
		}
		if complete {
			return m.goTo(ctx, store, userID, s, domain.ScreenMain)
		}
		return m.goTo(ctx, store, userID, s, domain.ScreenPeople)

	case actionBack, actionReservation:
		return m.goTo(ctx, store, userID, s, domain.ScreenReservationType)
	}
	return m.recoverToMain(ctx, store, userID, s, textUnknownAction)
}

func (m *Machine) applyPeople(ctx context.Context, store ports.SessionStore, userID string, s *domain.Session, act action) (*domain.Reply, error) {
	switch act.kind {
	case actionPeople:
		if err := reservation.SetPartySize(s, act.people); err != nil {
			return m.recoverToMain(ctx, store, userID, s, textInvalidInput)
		}
		return m.goTo(ctx, store, userID, s, domain.ScreenMain)

	case actionBack:
		// Strict parent navigation: back from the people screen returns to
		// the time screen, not the reservation-type screen.
		return m.goTo(ctx, store, userID, s, domain.ScreenTime)
	}
	return m.recoverToMain(ctx, store, userID, s, textUnknownAction)
}

// finalize converts the in-progress session into a completed-order snapshot.
func (m *Machine) finalize(ctx context.Context, store ports.SessionStore, userID string, s *domain.Session) (*domain.Reply, error) {
	if !s.HasActivity() {
		// Soft failure: no mutation, back to the main menu.
		return &domain.Reply{Text: textNothingToFinalize, Buttons: m.mainButtons()}, nil
	}

	lines, err := m.cart.Subtotals(s)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal)
	}

	completedAt := m.now()
	receipt := receiptText(s, lines, total, completedAt)

	items := make(map[string]int, len(s.Cart))
	for id, qty := range s.Cart {
		items[id] = qty
	}
	s.LastCompletedOrder = &domain.CompletedOrder{
		ID:          m.newID(),
		OrderType:   s.OrderType,
		Time:        s.Time,
		PartySize:   s.PartySize,
		Items:       items,
		Total:       total,
		CompletedAt: completedAt,
	}

	s.ResetInProgress()
	s.Screen = domain.ScreenMain
	if err := store.Save(ctx, userID, s); err != nil {
		return nil, err
	}

	m.logger.Info("order finalized",
		"user_id", userID,
		"order_id", s.LastCompletedOrder.ID,
		"total", total.String(),
	)
	return &domain.Reply{Text: receipt, Buttons: m.mainButtons()}, nil
}

// status renders the in-progress order and the last completed one.
// Read-only: it never mutates the session.
func (m *Machine) status(s *domain.Session) (*domain.Reply, error) {
	lines, err := m.cart.Subtotals(s)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal)
	}

	snapshotLines, err := m.cart.SnapshotLines(s.LastCompletedOrder)
	if err != nil {
		return nil, err
	}

	return &domain.Reply{
		Text:    statusText(s, lines, total, snapshotLines),
		Buttons: m.mainButtons(),
	}, nil
}

// goTo moves the session to a screen, persists it and renders that
// screen's prompt.
func (m *Machine) goTo(ctx context.Context, store ports.SessionStore, userID string, s *domain.Session, screen domain.Screen) (*domain.Reply, error) {
	s.Screen = screen
	if screen != domain.ScreenQuantity {
		s.PendingItem = ""
	}
	if err := store.Save(ctx, userID, s); err != nil {
		return nil, err
	}
	return m.render(s), nil
}

// render builds the prompt for the session's current screen.
func (m *Machine) render(s *domain.Session) *domain.Reply {
	switch s.Screen {
	case domain.ScreenMenu:
		return &domain.Reply{Text: menuText, Buttons: m.menuButtons(s)}
	case domain.ScreenReservationType:
		return &domain.Reply{Text: textReservationPrompt, Buttons: m.reservationTypeButtons()}
	case domain.ScreenTime:
		prompt := textTimeDineIn
		if s.OrderType == domain.OrderTypeTakeaway {
			prompt = textTimeTakeaway
		}
		return &domain.Reply{Text: prompt, Buttons: m.timeButtons()}
	case domain.ScreenPeople:
		return &domain.Reply{Text: textPeoplePrompt, Buttons: m.peopleButtons()}
	default:
		return m.replyMain()
	}
}

func (m *Machine) replyMain() *domain.Reply {
	return &domain.Reply{Text: welcomeText, Buttons: m.mainButtons()}
}

// recoverToMain handles user-input errors: the reply carries the error
// line plus the main-menu affordances, and the screen resets to main so
// the offered buttons always match the stored state. Nothing else mutates.
func (m *Machine) recoverToMain(ctx context.Context, store ports.SessionStore, userID string, s *domain.Session, text string) (*domain.Reply, error) {
	if s.Screen != domain.ScreenMain {
		s.Screen = domain.ScreenMain
		s.PendingItem = ""
		if err := store.Save(ctx, userID, s); err != nil {
			return nil, err
		}
	}
	return &domain.Reply{Text: text, Buttons: m.mainButtons()}, nil
}
