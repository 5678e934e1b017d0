package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/handlers"
	"github.com/nfrund/oncampus/internal/session"
	"github.com/nfrund/oncampus/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, initial domain.Screen) *testutils.Client {
	t.Helper()
	store := testutils.NewStore(t, testutils.Options{InitialScreen: initial})

	e := testutils.NewEcho(store)

	sh := handlers.NewSessionHandler(store)
	e.GET("/", handlers.NewHomeHandler(store).HomeGet)
	e.GET("/health", handlers.Health)
	e.GET("/api/session", sh.Get)
	e.POST("/api/session/triggers/:trigger", sh.Trigger)
	e.POST("/api/session/navigate/:screen", sh.Navigate)
	e.POST("/api/session/landing/progress", sh.Progress)

	return testutils.NewClient(t, e)
}

func decodeSession(t *testing.T, rec *httptest.ResponseRecorder) handlers.SessionResponse {
	t.Helper()
	return testutils.DecodeJSON[handlers.SessionResponse](t, rec, http.StatusOK)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handlers.ErrorResponse {
	t.Helper()
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func TestSessionAPI_StudentFlow(t *testing.T) {
	c := newTestServer(t, domain.ScreenStudentLanding)

	first := decodeSession(t, c.Do(http.MethodGet, "/api/session", ""))
	assert.Equal(t, domain.ScreenStudentLanding, first.Screen)
	assert.NotEmpty(t, first.SessionID)
	require.Len(t, first.Available, 1)
	assert.Equal(t, session.TriggerJoin, first.Available[0].Trigger)

	joined := decodeSession(t, c.Do(http.MethodPost, "/api/session/triggers/join", ""))
	assert.Equal(t, first.SessionID, joined.SessionID)
	assert.Equal(t, domain.ScreenStudentSignup, joined.Screen)

	done := decodeSession(t, c.Do(http.MethodPost, "/api/session/triggers/signup_completed", `{
		"name": "Ana", "email": "a@x.edu", "password": "pw", "college": "IIT Delhi",
		"course": "B.Tech CSE", "year": "3rd Year", "skills": ["Python", "SQL"], "resume": ""}`))
	assert.Equal(t, domain.ScreenStudentDashboard, done.Screen)
	require.NotNil(t, done.State.Student)
	assert.Equal(t, "Ana", done.State.Student.Name)
	assert.Equal(t, []string{"Python", "SQL"}, done.State.Student.Skills)
	assert.Empty(t, done.Available)
}

func TestSessionAPI_Errors(t *testing.T) {
	c := newTestServer(t, domain.ScreenStudentLanding)

	rec := c.Do(http.MethodPost, "/api/session/triggers/get_started", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "invalid_transition", decodeError(t, rec).Code)

	rec = c.Do(http.MethodPost, "/api/session/navigate/moon", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_screen", decodeError(t, rec).Code)

	decodeSession(t, c.Do(http.MethodPost, "/api/session/triggers/join", ""))
	rec = c.Do(http.MethodPost, "/api/session/triggers/signup_completed", `{"name": "Ana"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "incomplete_form", resp.Code)
	assert.Contains(t, resp.Fields, "email")

	rec = c.Do(http.MethodPost, "/api/session/triggers/signup_completed", `{"name": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_payload", decodeError(t, rec).Code)

	assert.Equal(t, domain.ScreenStudentSignup, decodeSession(t, c.Do(http.MethodGet, "/api/session", "")).Screen)
}

func TestSessionAPI_DemoNotice(t *testing.T) {
	c := newTestServer(t, domain.ScreenLanding)

	resp := decodeSession(t, c.Do(http.MethodPost, "/api/session/triggers/book_demo", ""))
	assert.Equal(t, domain.ScreenLanding, resp.Screen)
	assert.Equal(t, "Demo booking coming soon! For now, try the Get Started flow.", resp.Notice)

	page := c.Do(http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Demo booking coming soon!")

	again := c.Do(http.MethodGet, "/", "")
	assert.NotContains(t, again.Body.String(), "Demo booking coming soon!", "notices are shown once")
}

func TestSessionAPI_NavigateAndGuard(t *testing.T) {
	c := newTestServer(t, domain.ScreenLanding)

	resp := decodeSession(t, c.Do(http.MethodPost, "/api/session/navigate/employer_dashboard", ""))
	assert.Equal(t, domain.ScreenEmployerSignup, resp.Screen)
	require.NotNil(t, resp.Outcome)
	assert.Equal(t, domain.ScreenLanding, resp.Outcome.From)
}

func TestSessionAPI_LandingProgress(t *testing.T) {
	c := newTestServer(t, domain.ScreenEmployerLanding)

	top := decodeSession(t, c.Do(http.MethodGet, "/api/session", ""))
	require.NotNil(t, top.Landing)
	assert.Equal(t, handlers.LandingResponse{Background: "#1b1f3b"}, *top.Landing)

	scrolled := decodeSession(t, c.Do(http.MethodPost, "/api/session/landing/progress", `{"progress": 1.7}`))
	require.NotNil(t, scrolled.Landing)
	assert.Equal(t, handlers.LandingResponse{
		Progress:   1,
		Background: "#ffffff",
		Inverted:   true,
		Emphasised: true,
	}, *scrolled.Landing)

	rec := c.Do(http.MethodPost, "/api/session/landing/progress", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", decodeError(t, rec).Code)

	joined := decodeSession(t, c.Do(http.MethodPost, "/api/session/triggers/post_job", ""))
	assert.Nil(t, joined.Landing)
	rec = c.Do(http.MethodPost, "/api/session/landing/progress", `{"progress": 0.5}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "wrong_screen", decodeError(t, rec).Code)
}

func TestSessionAPI_HTMX(t *testing.T) {
	c := newTestServer(t, domain.ScreenLanding)

	rec := c.Do(http.MethodPost, "/api/session/triggers/get_started", "", "HX-Request", "true")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML))
	assert.True(t, strings.HasPrefix(rec.Body.String(), `<main id="screen" data-screen="signup">`))
}

func TestHomeAndHealth(t *testing.T) {
	c := newTestServer(t, domain.ScreenStudentLanding)

	rec := c.Do(http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-screen="student_landing"`)
	assert.Contains(t, rec.Body.String(), "htmx.org")

	rec = c.Do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestHTTPError(t *testing.T) {
	assert.NoError(t, handlers.HTTPError(nil))

	tests := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidTab, http.StatusBadRequest},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrNoView, http.StatusConflict},
		{session.ErrBadPayload, http.StatusBadRequest},
	}
	for _, tt := range tests {
		var he *echo.HTTPError
		require.ErrorAs(t, handlers.HTTPError(tt.err), &he)
		assert.Equal(t, tt.code, he.Code)
		assert.ErrorIs(t, he.Internal, tt.err)
	}

	plain := io.ErrUnexpectedEOF
	assert.Same(t, plain, handlers.HTTPError(plain))
}
