package university_test

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/handlers"
	"github.com/nfrund/oncampus/internal/invite"
	"github.com/nfrund/oncampus/internal/modules/university"
	"github.com/nfrund/oncampus/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newServer(t *testing.T, opts testutils.Options) http.Handler {
	t.Helper()
	store := testutils.NewStore(t, opts)
	e := testutils.NewEcho(store)
	testutils.Mount(t, e, store, university.New(university.Dependencies{SubmitRate: rate.Limit(1000)}))
	return e
}

func signedIn(t *testing.T) *testutils.Client {
	t.Helper()
	c := testutils.NewClient(t, newServer(t, testutils.Options{InitialScreen: domain.ScreenSignIn}))
	resp := testutils.DecodeJSON[handlers.SessionResponse](t,
		c.Do(http.MethodPost, "/api/university/signin", `{"email":"officer@iitd.ac.in","password":"pw"}`), http.StatusOK)
	require.Equal(t, domain.ScreenDashboard, resp.Screen)
	return c
}

func dashboardOf(t *testing.T, rec *httptest.ResponseRecorder) university.DashboardResponse {
	t.Helper()
	return testutils.DecodeJSON[university.DashboardResponse](t, rec, http.StatusOK)
}

func TestSignIn(t *testing.T) {
	c := testutils.NewClient(t, newServer(t, testutils.Options{InitialScreen: domain.ScreenSignIn}))

	rec := c.Do(http.MethodPost, "/api/university/signin", `{"email":"officer@iitd.ac.in"}`)
	errResp := testutils.DecodeJSON[handlers.ErrorResponse](t, rec, http.StatusBadRequest)
	assert.Equal(t, "incomplete_form", errResp.Code)
	assert.Equal(t, []string{"password"}, errResp.Fields)

	rec = c.Do(http.MethodGet, "/api/university/dashboard", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	resp := testutils.DecodeJSON[handlers.SessionResponse](t,
		c.Do(http.MethodPost, "/api/university/signin", `{"email":"officer@iitd.ac.in","password":"pw"}`), http.StatusOK)
	assert.Equal(t, domain.ScreenDashboard, resp.Screen)
	require.NotNil(t, resp.State.University)
	assert.Equal(t, "officer@iitd.ac.in", resp.State.University.Email)

	d := dashboardOf(t, c.Do(http.MethodGet, "/api/university/dashboard", ""))
	assert.Equal(t, "Indian Institute of Technology, Delhi", d.Profile.UniversityName)
	assert.Equal(t, "overview", d.Tab)
	assert.Equal(t, 2, d.UnreadCount)
	assert.Len(t, d.Students, 5)
}

func TestSignupFlow(t *testing.T) {
	c := testutils.NewClient(t, newServer(t, testutils.Options{InitialScreen: domain.ScreenSignup}))

	rec := c.Do(http.MethodPost, "/api/university/signup/complete", "")
	assert.Equal(t, http.StatusConflict, rec.Code, "complete needs the invite step")

	resp := testutils.DecodeJSON[handlers.SessionResponse](t, c.Do(http.MethodPost, "/api/university/signup",
		`{"name":"Meera Iyer","email":"meera@bits.ac.in","universityName":"BITS Pilani","designation":"Dean"}`), http.StatusOK)
	assert.Equal(t, domain.ScreenSignup, resp.Screen)

	testutils.DecodeJSON[handlers.SessionResponse](t, c.Do(http.MethodPost, "/api/university/signup/back", ""), http.StatusOK)
	testutils.DecodeJSON[handlers.SessionResponse](t, c.Do(http.MethodPost, "/api/university/signup",
		`{"name":"Meera Iyer","email":"meera@bits.ac.in","universityName":"BITS Pilani","designation":"Dean"}`), http.StatusOK)

	resp = testutils.DecodeJSON[handlers.SessionResponse](t, c.Do(http.MethodPost, "/api/university/signup/complete", ""), http.StatusOK)
	assert.Equal(t, domain.ScreenDashboard, resp.Screen)
	require.NotNil(t, resp.Outcome)
	assert.Equal(t, domain.ScreenSignup, resp.Outcome.From)

	d := dashboardOf(t, c.Do(http.MethodGet, "/api/university/dashboard", ""))
	assert.Equal(t, "BITS Pilani", d.Profile.UniversityName)
}

func TestDashboard(t *testing.T) {
	c := signedIn(t)

	t.Run("tabs", func(t *testing.T) {
		d := dashboardOf(t, c.Do(http.MethodPost, "/api/university/dashboard/tab", `{"tab":"students"}`))
		assert.Equal(t, "students", d.Tab)

		rec := c.Do(http.MethodPost, "/api/university/dashboard/tab", `{"tab":"payroll"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = c.Do(http.MethodPost, "/api/university/dashboard/tab", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("students", func(t *testing.T) {
		d := dashboardOf(t, c.Do(http.MethodGet, "/api/university/dashboard/students?status=placed", ""))
		require.Len(t, d.Students, 1)
		assert.Equal(t, "Arjun Patel", d.Students[0].Name)

		d = dashboardOf(t, c.Do(http.MethodGet, "/api/university/dashboard/students?q=PRIYA", ""))
		require.Len(t, d.Students, 1)
		assert.Equal(t, "1", d.Students[0].ID)

		rec := c.Do(http.MethodGet, "/api/university/dashboard/students?status=expelled", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		d = dashboardOf(t, c.Do(http.MethodPost, "/api/university/dashboard/students/2/select", ""))
		require.NotNil(t, d.SelectedStudent)
		assert.Equal(t, "Rahul Verma", d.SelectedStudent.Name)

		d = dashboardOf(t, c.Do(http.MethodDelete, "/api/university/dashboard/selection", ""))
		assert.Nil(t, d.SelectedStudent)

		rec = c.Do(http.MethodPost, "/api/university/dashboard/students/99/select", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("notifications", func(t *testing.T) {
		d := dashboardOf(t, c.Do(http.MethodPost, "/api/university/dashboard/notifications/1/read", ""))
		assert.Equal(t, 1, d.UnreadCount)

		rec := c.Do(http.MethodPost, "/api/university/dashboard/notifications/42/read", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		d = dashboardOf(t, c.Do(http.MethodPost, "/api/university/dashboard/notifications/read", ""))
		assert.Zero(t, d.UnreadCount)
	})

	t.Run("posts", func(t *testing.T) {
		d := dashboardOf(t, c.Do(http.MethodPost, "/api/university/dashboard/posts",
			`{"type":"message","content":"Resume clinic on Friday"}`))
		require.Len(t, d.Posts, 3)
		assert.Equal(t, "Resume clinic on Friday", d.Posts[0].Content)
		assert.Equal(t, "Dr. Rajesh Kumar", d.Posts[0].Author)

		d = dashboardOf(t, c.Do(http.MethodPost, "/api/university/dashboard/posts",
			`{"type":"poll","content":"Preferred mock interview slot?","pollOptions":["Morning","Afternoon","Evening"]}`))
		require.Len(t, d.Posts, 4)
		require.Len(t, d.Posts[0].PollOptions, 3)
		assert.Equal(t, "Evening", d.Posts[0].PollOptions[2].Option)

		rec := c.Do(http.MethodPost, "/api/university/dashboard/posts", `{"type":"poll","content":"Q?","pollOptions":["Only one"]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = c.Do(http.MethodPost, "/api/university/dashboard/posts",
			`{"type":"poll","content":"Q?","pollOptions":["a","b","c","d","e","f"]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = c.Do(http.MethodPost, "/api/university/dashboard/posts", `{"type":"video","content":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		d = dashboardOf(t, c.Do(http.MethodGet, "/api/university/dashboard", ""))
		assert.Len(t, d.Posts, 4)
	})

	t.Run("placements", func(t *testing.T) {
		rec := c.Do(http.MethodPost, "/api/university/dashboard/placements", `{"companyName":"TechCorp"}`)
		errResp := testutils.DecodeJSON[handlers.ErrorResponse](t, rec, http.StatusBadRequest)
		assert.Equal(t, "incomplete_form", errResp.Code)

		d := dashboardOf(t, c.Do(http.MethodPost, "/api/university/dashboard/placements",
			`{"companyName":"TechCorp","role":"SDE","studentName":"Sneha Reddy","ctc":"18 LPA"}`))
		assert.Len(t, d.Students, 5, "offline placements do not change the dashboard")
	})

	t.Run("htmx", func(t *testing.T) {
		rec := c.Do(http.MethodGet, "/api/university/dashboard", "", "HX-Request", "true")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Body.String(), `<main id="screen" data-screen="dashboard">`))
	})
}

func TestInviteWS(t *testing.T) {
	srv := httptest.NewServer(newServer(t, testutils.Options{
		InitialScreen: domain.ScreenSignup,
		Invite:        invite.Config{Cap: 6, Interval: 5 * time.Millisecond, MaxStep: 2},
	}))
	defer srv.Close()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/university/signup/invite/ws"
	_, resp, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{HTTPClient: client})
	require.Error(t, err, "the stream needs the invite step")
	if resp != nil {
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	}

	body := strings.NewReader(`{"name":"Meera Iyer","email":"meera@bits.ac.in","universityName":"BITS Pilani","designation":"Dean"}`)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, srv.URL+"/api/university/signup", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	res, err := client.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	conn, _, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{HTTPClient: client})
	require.NoError(t, err)
	defer conn.CloseNow()

	var updates []university.InviteUpdate
	for {
		var u university.InviteUpdate
		if err := wsjson.Read(ctx, conn, &u); err != nil {
			assert.Equal(t, websocket.StatusNormalClosure, websocket.CloseStatus(err))
			break
		}
		updates = append(updates, u)
	}

	require.NotEmpty(t, updates)
	last := updates[len(updates)-1]
	assert.Equal(t, 6, last.Count)
	assert.Equal(t, 6, last.Cap)
	for i := 1; i < len(updates); i++ {
		assert.GreaterOrEqual(t, updates[i].Count, updates[i-1].Count)
	}
}
