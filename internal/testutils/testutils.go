// Package testutils builds echo servers backed by a real session store for
// handler and module tests.
package testutils

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/joho/godotenv"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/oncampus/internal/auth"
	"github.com/nfrund/oncampus/internal/config"
	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/events"
	"github.com/nfrund/oncampus/internal/handlers"
	"github.com/nfrund/oncampus/internal/invite"
	"github.com/nfrund/oncampus/internal/middleware"
	"github.com/nfrund/oncampus/internal/module"
	"github.com/nfrund/oncampus/internal/pubsub"
	"github.com/nfrund/oncampus/internal/registry"
	"github.com/nfrund/oncampus/internal/session"
	"github.com/stretchr/testify/require"
)

const sessionSecret = "a-very-secret-key-for-testing-!"

// ConfigForTests returns the default configuration with a .env.test file
// from the project root applied on top, if there is one.
func ConfigForTests(t *testing.T) config.Provider {
	t.Helper()

	path, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			break
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}

	if env, err := godotenv.Read(filepath.Join(path, ".env.test")); err == nil {
		for key, value := range env {
			t.Setenv(key, value)
		}
	}

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	return cfg
}

// Options tune the sessions of a test server.
type Options struct {
	InitialScreen domain.Screen
	// Invite defaults to a counter that never ticks during a test.
	Invite    invite.Config
	Publisher pubsub.Publisher
}

// NewStore creates a session store that is closed when the test ends.
func NewStore(t *testing.T, opts Options) *session.Store {
	t.Helper()
	if opts.Invite.Interval == 0 {
		opts.Invite = invite.Config{Cap: 50, Interval: time.Hour, MaxStep: 2}
	}
	store := session.NewStore(session.FactoryFor(session.Dependencies{
		Auth:          auth.NewMock(nil),
		Emitter:       events.NewEmitter(opts.Publisher, nil),
		InitialScreen: opts.InitialScreen,
		MinSkills:     1,
		Invite:        opts.Invite,
		InviteLink:    "https://oncampus.app/join/test",
	}), nil)
	t.Cleanup(store.Close)
	return store
}

// NewEcho returns an echo instance with the cookie and session middleware
// and the request validator installed, the way the server sets them up.
func NewEcho(store *session.Store) *echo.Echo {
	e := echo.New()
	e.Validator = handlers.NewValidator()
	e.Use(echosession.Middleware(middleware.NewCookieStore(sessionSecret, false)))
	e.Use(middleware.Session(store))
	return e
}

// Mount boots modules under /api with the store registered, as the server does.
func Mount(t *testing.T, e *echo.Echo, store *session.Store, modules ...module.Module) {
	t.Helper()
	reg := registry.New(config.Defaults())
	registry.Set(reg, registry.SessionStoreKey, store)
	require.NoError(t, module.Start(context.Background(), e.Group("/api"), reg, modules))
}

// Client replays cookies between requests like a browser would.
type Client struct {
	t       *testing.T
	h       http.Handler
	cookies map[string]*http.Cookie
}

// NewClient creates a client without cookies.
func NewClient(t *testing.T, h http.Handler) *Client {
	return &Client{t: t, h: h, cookies: make(map[string]*http.Cookie)}
}

// Do issues a request. A non-empty body is sent as JSON. Extra headers are
// given as name, value pairs.
func (c *Client) Do(method, path, body string, header ...string) *httptest.ResponseRecorder {
	c.t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c.h.ServeHTTP(rec, req)
	for _, cookie := range rec.Result().Cookies() {
		c.cookies[cookie.Name] = cookie
	}
	return rec
}

// Cookies returns the cookies collected so far.
func (c *Client) Cookies() []*http.Cookie {
	out := make([]*http.Cookie, 0, len(c.cookies))
	for _, cookie := range c.cookies {
		out = append(out, cookie)
	}
	return out
}

// DecodeJSON requires status and decodes the response body into T.
func DecodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder, status int) T {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

// Publisher records every published message.
type Publisher struct {
	mu   sync.Mutex
	msgs []pubsub.Message
}

// Publish implements pubsub.Publisher.
func (p *Publisher) Publish(_ context.Context, msg pubsub.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
	return nil
}

// Close implements pubsub.Publisher.
func (p *Publisher) Close() error { return nil }

// Topics returns the topics of all messages in publish order.
func (p *Publisher) Topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.msgs))
	for _, m := range p.msgs {
		out = append(out, m.Topic)
	}
	return out
}

// Last returns the most recent message on topic.
func (p *Publisher) Last(topic string) (pubsub.Message, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := len(p.msgs) - 1; i >= 0; i-- {
		if p.msgs[i].Topic == topic {
			return p.msgs[i], true
		}
	}
	return pubsub.Message{}, false
}
