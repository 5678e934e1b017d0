package activity_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/events"
	"github.com/nfrund/oncampus/internal/module"
	"github.com/nfrund/oncampus/internal/modules/activity"
	"github.com/nfrund/oncampus/internal/pubsub"
	"github.com/nfrund/oncampus/internal/registry"
	"github.com/nfrund/oncampus/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityModule(t *testing.T) {
	bus := pubsub.NewWatermillBridge(16)
	t.Cleanup(func() { _ = bus.Close() })

	reg := registry.New(nil)
	registry.Set(reg, registry.SubscriberKey, pubsub.Subscriber(bus))

	e := echo.New()
	m := activity.New(activity.Dependencies{Size: 10})
	mods := []module.Module{m}
	require.NoError(t, module.Start(context.Background(), e.Group("/api"), reg, mods))
	t.Cleanup(func() { _ = module.ShutdownAll(context.Background(), mods) })

	feed := registry.MustGet(reg, activity.FeedKey)

	emitter := events.NewEmitter(bus, nil).ForSession("s1")
	events.Emit(context.Background(), emitter, events.TopicScreenChanged, events.ScreenChanged{
		From: domain.ScreenLanding, To: domain.ScreenSignup, Trigger: "get_started",
	})
	events.Emit(context.Background(), emitter, events.TopicJobPosted, events.JobPosted{CompanyName: "Acme"})

	require.Eventually(t, func() bool { return feed.Len() == 2 }, 2*time.Second, 10*time.Millisecond)

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	all := testutils.DecodeJSON[activity.ListResponse](t, get("/api/events"), http.StatusOK)
	assert.Equal(t, 2, all.Count)
	assert.Equal(t, "s1", all.Events[0].SessionID)

	jobs := testutils.DecodeJSON[activity.ListResponse](t, get("/api/events?topic="+events.TopicJobPosted.Name()), http.StatusOK)
	require.Len(t, jobs.Events, 1)
	assert.Contains(t, string(jobs.Events[0].Payload), `"companyName":"Acme"`)

	limited := testutils.DecodeJSON[activity.ListResponse](t, get("/api/events?limit=1"), http.StatusOK)
	assert.Equal(t, 1, limited.Count)

	assert.Equal(t, http.StatusBadRequest, get("/api/events?limit=-1").Code)
}
