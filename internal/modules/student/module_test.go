package student_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/handlers"
	"github.com/nfrund/oncampus/internal/modules/student"
	"github.com/nfrund/oncampus/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newClient(t *testing.T, initial domain.Screen) *testutils.Client {
	t.Helper()
	store := testutils.NewStore(t, testutils.Options{InitialScreen: initial})
	e := testutils.NewEcho(store)
	testutils.Mount(t, e, store, student.New(student.Dependencies{SubmitRate: rate.Limit(1000)}))
	return testutils.NewClient(t, e)
}

func sessionOf(t *testing.T, rec *httptest.ResponseRecorder) handlers.SessionResponse {
	t.Helper()
	return testutils.DecodeJSON[handlers.SessionResponse](t, rec, http.StatusOK)
}

func TestSignIn(t *testing.T) {
	c := newClient(t, domain.ScreenStudentSignIn)

	rec := c.Do(http.MethodPost, "/api/student/signin", `{"email":"priya@iitd.ac.in","password":"pw"}`)
	errResp := testutils.DecodeJSON[handlers.ErrorResponse](t, rec, http.StatusBadRequest)
	assert.Equal(t, []string{"college"}, errResp.Fields)

	resp := sessionOf(t, c.Do(http.MethodPost, "/api/student/signin", `{"email":"priya@iitd.ac.in","password":"pw","college":"IIT Delhi"}`))
	assert.Equal(t, domain.ScreenStudentDashboard, resp.Screen)
	require.NotNil(t, resp.State.Student)
	assert.Equal(t, "IIT Delhi", resp.State.Student.College)

	d := testutils.DecodeJSON[student.DashboardResponse](t, c.Do(http.MethodGet, "/api/student/dashboard", ""), http.StatusOK)
	assert.Equal(t, "Welcome back, Priya!", d.Greeting)
	assert.Equal(t, "opportunities", d.Tab)
	assert.False(t, d.NotificationsOpen)
}

func TestSignupSteps(t *testing.T) {
	c := newClient(t, domain.ScreenStudentSignup)

	rec := c.Do(http.MethodPost, "/api/student/signup/next", `{"name":"Ana Gomes","email":"ana@nitt.edu"}`)
	errResp := testutils.DecodeJSON[handlers.ErrorResponse](t, rec, http.StatusBadRequest)
	assert.Equal(t, []string{"password"}, errResp.Fields)

	// Fields from the rejected attempt are kept.
	sessionOf(t, c.Do(http.MethodPost, "/api/student/signup/next", `{"password":"secret"}`))
	sessionOf(t, c.Do(http.MethodPost, "/api/student/signup/back", ""))

	page := c.Do(http.MethodPost, "/api/student/signup/next", "", "HX-Request", "true")
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Step 2 of 3")

	sessionOf(t, c.Do(http.MethodPost, "/api/student/signup/next", `{"college":"NIT Trichy","course":"B.Tech IT","year":"3rd Year"}`))

	page = c.Do(http.MethodPost, "/api/student/signup/save", `{"skills":[]}`, "HX-Request", "true")
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), `<button type="submit" disabled>Create account</button>`)

	page = c.Do(http.MethodPost, "/api/student/signup/save", `{"skills":["SQL"]}`, "HX-Request", "true")
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), `value="SQL" checked`)
	assert.Contains(t, page.Body.String(), `<button type="submit" hx-post="/api/student/signup" hx-target="#screen"`)

	rec = c.Do(http.MethodPost, "/api/student/signup", `{"skills":[]}`)
	errResp = testutils.DecodeJSON[handlers.ErrorResponse](t, rec, http.StatusBadRequest)
	assert.Equal(t, []string{"skills"}, errResp.Fields)

	page = c.Do(http.MethodPost, "/api/student/signup", `{"skills":["SQL"]}`, "HX-Request", "true")
	require.Equal(t, http.StatusOK, page.Code)
	assert.True(t, strings.HasPrefix(page.Body.String(), `<main id="screen" data-screen="student_dashboard">`))
	assert.Contains(t, page.Body.String(), "Welcome back, Ana!")
}

func TestDashboard(t *testing.T) {
	c := newClient(t, domain.ScreenStudentSignIn)
	assert.Equal(t, http.StatusConflict, c.Do(http.MethodGet, "/api/student/dashboard", "").Code)

	sessionOf(t, c.Do(http.MethodPost, "/api/student/signin", `{"email":"p@x.edu","password":"pw","college":"IIT Delhi"}`))

	d := testutils.DecodeJSON[student.DashboardResponse](t,
		c.Do(http.MethodPost, "/api/student/dashboard/tab", `{"tab":"interviews"}`), http.StatusOK)
	assert.Equal(t, "interviews", d.Tab)
	assert.Equal(t, http.StatusBadRequest, c.Do(http.MethodPost, "/api/student/dashboard/tab", `{"tab":"jobs"}`).Code)

	d = testutils.DecodeJSON[student.DashboardResponse](t,
		c.Do(http.MethodPost, "/api/student/dashboard/notifications/toggle", ""), http.StatusOK)
	assert.True(t, d.NotificationsOpen)
	d = testutils.DecodeJSON[student.DashboardResponse](t,
		c.Do(http.MethodPost, "/api/student/dashboard/notifications/toggle", ""), http.StatusOK)
	assert.False(t, d.NotificationsOpen)
}
