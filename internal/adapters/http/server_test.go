package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/munteanooo/telegram-restaurant-bot/internal/adapters/http"
	"github.com/munteanooo/telegram-restaurant-bot/internal/bot"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/adapters/memory"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/catalog"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/domain"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/session"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	machine := bot.New(session.NewManager(memory.NewStore()), catalog.Default())
	return httpadapter.NewHandler(machine, prometheus.NewRegistry())
}

func postInteract(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/interact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestInteract_HappyPath(t *testing.T) {
	handler := newTestHandler(t)

	rec := postInteract(t, handler, `{"user_id":"u1","action":"menu"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var reply domain.Reply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.Contains(t, reply.Text, "Meniu Restaurant Cezar:")
	require.NotEmpty(t, reply.Buttons)
	assert.Equal(t, "item_pizza_margherita", reply.Buttons[0].Action)
}

func TestInteract_MalformedBody(t *testing.T) {
	handler := newTestHandler(t)

	rec := postInteract(t, handler, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInteract_MissingFields(t *testing.T) {
	handler := newTestHandler(t)

	for _, body := range []string{
		`{}`,
		`{"user_id":"u1"}`,
		`{"action":"menu"}`,
	} {
		rec := postInteract(t, handler, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestInteract_UserInputErrorsStayHTTP200(t *testing.T) {
	// Unknown actions are a conversation-level problem, not a transport one.
	handler := newTestHandler(t)

	rec := postInteract(t, handler, `{"user_id":"u1","action":"gibberish"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var reply domain.Reply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.Contains(t, reply.Text, "Acțiune necunoscută")
	assert.NotEmpty(t, reply.Buttons)
}

// brokenStore fails every operation.
type brokenStore struct{}

var errStoreDown = errors.New("store down")

func (brokenStore) Save(context.Context, string, *domain.Session) error { return errStoreDown }
func (brokenStore) Load(context.Context, string) (*domain.Session, error) {
	return nil, errStoreDown
}
func (brokenStore) Delete(context.Context, string) error   { return errStoreDown }
func (brokenStore) List(context.Context) ([]string, error) { return nil, errStoreDown }

func TestInteract_StoreFailureIsHTTP500(t *testing.T) {
	machine := bot.New(session.NewManager(brokenStore{}), catalog.Default())
	handler := httpadapter.NewHandler(machine, prometheus.NewRegistry())

	rec := postInteract(t, handler, `{"user_id":"u1","action":"menu"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var reply domain.Reply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.Equal(t, "A apărut o eroare. Vă rugăm să încercați din nou.", reply.Text)
	assert.Empty(t, reply.Buttons)
}

func TestHealthz(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestMetrics_CountInteractions(t *testing.T) {
	handler := newTestHandler(t)

	postInteract(t, handler, `{"user_id":"u1","action":"menu"}`)
	postInteract(t, handler, `{"user_id":"u1","action":"item_pizza_margherita"}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	metrics := rec.Body.String()
	assert.Contains(t, metrics, `restobot_interactions_total{action="menu",outcome="ok"} 1`)
	assert.Contains(t, metrics, `restobot_interactions_total{action="item",outcome="ok"} 1`)
	assert.Contains(t, metrics, "restobot_interaction_duration_seconds")
}
