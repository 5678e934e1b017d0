package employer_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/events"
	"github.com/nfrund/oncampus/internal/handlers"
	"github.com/nfrund/oncampus/internal/modules/employer"
	"github.com/nfrund/oncampus/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const signupBody = `{"companyName":"TechCorp","email":"hr@techcorp.in","role":"Talent Lead"}`

func newClient(t *testing.T, pub *testutils.Publisher) *testutils.Client {
	t.Helper()
	opts := testutils.Options{InitialScreen: domain.ScreenEmployerSignup}
	if pub != nil {
		opts.Publisher = pub
	}
	store := testutils.NewStore(t, opts)
	e := testutils.NewEcho(store)
	testutils.Mount(t, e, store, employer.New(employer.Dependencies{SubmitRate: rate.Limit(1000)}))
	return testutils.NewClient(t, e)
}

func session(t *testing.T, rec *httptest.ResponseRecorder) handlers.SessionResponse {
	t.Helper()
	return testutils.DecodeJSON[handlers.SessionResponse](t, rec, http.StatusOK)
}

func dashboardOf(t *testing.T, rec *httptest.ResponseRecorder) employer.DashboardResponse {
	t.Helper()
	return testutils.DecodeJSON[employer.DashboardResponse](t, rec, http.StatusOK)
}

func TestSignup_PostJob(t *testing.T) {
	pub := &testutils.Publisher{}
	c := newClient(t, pub)

	rec := c.Do(http.MethodPost, "/api/employer/job", `{"title":"SDE Intern"}`)
	assert.Equal(t, http.StatusConflict, rec.Code, "the job step comes after the details")

	rec = c.Do(http.MethodPost, "/api/employer/signup", `{"companyName":"TechCorp"}`)
	errResp := testutils.DecodeJSON[handlers.ErrorResponse](t, rec, http.StatusBadRequest)
	assert.ElementsMatch(t, []string{"email", "role"}, errResp.Fields)

	assert.Equal(t, domain.ScreenEmployerSignup, session(t, c.Do(http.MethodPost, "/api/employer/signup", signupBody)).Screen)

	rec = c.Do(http.MethodPost, "/api/employer/job", `{"skills":["Go"]}`)
	errResp = testutils.DecodeJSON[handlers.ErrorResponse](t, rec, http.StatusBadRequest)
	assert.Contains(t, errResp.Fields, "title")

	resp := session(t, c.Do(http.MethodPost, "/api/employer/job", `{
		"title":"SDE Intern","type":"intern","startDate":"2026-06-01",
		"skills":[" Go ","Go","SQL"],"courses":["B.Tech CSE"],"years":["3rd Year"]}`))
	assert.Equal(t, domain.ScreenEmployerDashboard, resp.Screen)
	require.NotNil(t, resp.State.Employer)
	assert.Equal(t, domain.EmployerProfile{CompanyName: "TechCorp", Email: "hr@techcorp.in", Role: "Talent Lead"}, *resp.State.Employer)

	msg, ok := pub.Last(events.TopicJobPosted.Name())
	require.True(t, ok)
	var posted events.JobPosted
	require.NoError(t, json.Unmarshal(msg.Payload, &posted))
	assert.Equal(t, "TechCorp", posted.CompanyName)
	assert.Equal(t, []string{"Go", "SQL"}, posted.Job.Skills)
	assert.Equal(t, []string{"B.Tech CSE"}, posted.Job.Courses)
	assert.Equal(t, []string{"3rd Year"}, posted.Job.Years)
}

func TestSignup_SkipJob(t *testing.T) {
	pub := &testutils.Publisher{}
	c := newClient(t, pub)

	assert.Equal(t, http.StatusConflict, c.Do(http.MethodPost, "/api/employer/job/skip", "").Code)

	session(t, c.Do(http.MethodPost, "/api/employer/signup", signupBody))
	resp := session(t, c.Do(http.MethodPost, "/api/employer/job/skip", ""))
	assert.Equal(t, domain.ScreenEmployerDashboard, resp.Screen)
	require.NotNil(t, resp.State.Employer)

	_, posted := pub.Last(events.TopicJobPosted.Name())
	assert.False(t, posted)
}

func TestDashboard(t *testing.T) {
	pub := &testutils.Publisher{}
	c := newClient(t, pub)
	session(t, c.Do(http.MethodPost, "/api/employer/signup", signupBody))
	session(t, c.Do(http.MethodPost, "/api/employer/job/skip", ""))

	d := dashboardOf(t, c.Do(http.MethodGet, "/api/employer/dashboard", ""))
	assert.Equal(t, "overview", d.Tab)
	assert.Len(t, d.Roles, 4)
	assert.Len(t, d.Applications, 4)

	d = dashboardOf(t, c.Do(http.MethodPost, "/api/employer/dashboard/tab", `{"tab":"applications"}`))
	assert.Equal(t, "applications", d.Tab)
	assert.Equal(t, http.StatusBadRequest, c.Do(http.MethodPost, "/api/employer/dashboard/tab", `{"tab":"community"}`).Code)

	d = dashboardOf(t, c.Do(http.MethodPost, "/api/employer/dashboard/roles/3/select", ""))
	assert.Equal(t, "3", d.SelectedRoleID)
	assert.Equal(t, http.StatusNotFound, c.Do(http.MethodPost, "/api/employer/dashboard/roles/9/select", "").Code)

	d = dashboardOf(t, c.Do(http.MethodPost, "/api/employer/dashboard/applications/2/select", ""))
	require.NotNil(t, d.SelectedApplication)
	assert.Equal(t, "Rahul Verma", d.SelectedApplication.StudentName)

	d = dashboardOf(t, c.Do(http.MethodDelete, "/api/employer/dashboard/selection", ""))
	assert.Nil(t, d.SelectedApplication)

	d = dashboardOf(t, c.Do(http.MethodPost, "/api/employer/dashboard/applications/2/shortlist", ""))
	assert.Equal(t, domain.ApplicationApplied, d.Applications[1].Status, "actions do not change the status")

	msg, ok := pub.Last(events.TopicApplicationActed.Name())
	require.True(t, ok)
	var acted events.ApplicationActed
	require.NoError(t, json.Unmarshal(msg.Payload, &acted))
	assert.Equal(t, events.ApplicationActed{ApplicationID: "2", StudentName: "Rahul Verma", Action: domain.ActionShortlist}, acted)

	assert.Equal(t, http.StatusBadRequest, c.Do(http.MethodPost, "/api/employer/dashboard/applications/2/hire", "").Code)
	assert.Equal(t, http.StatusNotFound, c.Do(http.MethodPost, "/api/employer/dashboard/applications/7/reject", "").Code)
}
