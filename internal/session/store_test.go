package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/oncampus/internal/auth"
	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/events"
	"github.com/nfrund/oncampus/internal/invite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFactory(sessionID string) (*Controller, error) {
	return New(Dependencies{
		Auth:          auth.NewMock(nil),
		InitialScreen: domain.ScreenLanding,
		Invite:        invite.Config{Cap: 50, Interval: time.Hour, MaxStep: 2},
	})
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestStore_CreateAndDo(t *testing.T) {
	store := NewStore(testFactory, nil)
	defer store.Close()

	id, err := store.Create()
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, 1, store.Len())

	err = store.Do(id, func(c *Controller) error {
		_, err := c.Fire(context.Background(), TriggerGetStarted)
		return err
	})
	require.NoError(t, err)

	var screen domain.Screen
	require.NoError(t, store.Do(id, func(c *Controller) error {
		screen = c.Screen()
		return nil
	}))
	assert.Equal(t, domain.ScreenSignup, screen)

	err = store.Do("missing", func(*Controller) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)

	boom := errors.New("boom")
	assert.ErrorIs(t, store.Do(id, func(*Controller) error { return boom }), boom)
}

func TestStore_Ensure(t *testing.T) {
	store := NewStore(testFactory, nil)
	defer store.Close()

	id, created, err := store.Ensure("")
	require.NoError(t, err)
	assert.True(t, created)

	same, created, err := store.Ensure(id)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, id, same)

	other, created, err := store.Ensure("expired-cookie")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, "expired-cookie", other)
	assert.Equal(t, 2, store.Len())
}

func TestStore_FactoryError(t *testing.T) {
	store := NewStore(func(string) (*Controller, error) { return nil, errors.New("no auth") }, nil)
	_, err := store.Create()
	assert.Error(t, err)
	assert.Zero(t, store.Len())
}

func TestStore_DeleteAndPrune(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := NewStore(testFactory, nil, WithClock(clock.Now))
	defer store.Close()

	stale, err := store.Create()
	require.NoError(t, err)
	fresh, err := store.Create()
	require.NoError(t, err)

	clock.Advance(20 * time.Minute)
	require.NoError(t, store.Do(fresh, func(*Controller) error { return nil }))
	clock.Advance(15 * time.Minute)

	assert.Equal(t, 1, store.Prune(30*time.Minute))
	assert.ErrorIs(t, store.Do(stale, func(*Controller) error { return nil }), domain.ErrNotFound)
	assert.NoError(t, store.Do(fresh, func(*Controller) error { return nil }))

	store.Delete(fresh)
	assert.Zero(t, store.Len())
	store.Delete(fresh)
}

func TestStore_ClosingStopsCounters(t *testing.T) {
	store := NewStore(func(string) (*Controller, error) {
		return New(Dependencies{
			Auth:          auth.NewMock(nil),
			InitialScreen: domain.ScreenSignup,
			Invite:        invite.Config{Cap: 50, Interval: time.Hour, MaxStep: 2},
		})
	}, nil)

	id, err := store.Create()
	require.NoError(t, err)

	var counter *invite.Counter
	require.NoError(t, store.Do(id, func(c *Controller) error {
		form, err := c.UniversitySignupForm()
		if err != nil {
			return err
		}
		form.SetName("n")
		form.SetEmail("e")
		form.SetUniversityName("u")
		form.SetDesignation("d")
		counter = form.Counter()
		return form.Next(context.Background())
	}))
	require.True(t, counter.Running())

	store.Close()
	assert.False(t, counter.Running())
	assert.Zero(t, store.Len())
}

func TestStore_ConcurrentSessions(t *testing.T) {
	store := NewStore(testFactory, nil)
	defer store.Close()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := store.Create()
			if !assert.NoError(t, err) {
				return
			}
			for range 10 {
				_ = store.Do(id, func(c *Controller) error {
					if c.Screen() == domain.ScreenLanding {
						_, err := c.Fire(context.Background(), TriggerEmployers)
						return err
					}
					_, err := c.Navigate(context.Background(), domain.ScreenLanding)
					return err
				})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, store.Len())
}

func TestFactoryFor_StampsSessionID(t *testing.T) {
	pub := &memPublisher{}
	store := NewStore(FactoryFor(Dependencies{
		Auth:          auth.NewMock(nil),
		Emitter:       events.NewEmitter(pub, nil),
		InitialScreen: domain.ScreenLanding,
		Invite:        invite.Config{Cap: 50, Interval: time.Hour, MaxStep: 2},
	}), nil)
	defer store.Close()

	first, err := store.Create()
	require.NoError(t, err)
	second, err := store.Create()
	require.NoError(t, err)

	for _, id := range []string{first, second} {
		require.NoError(t, store.Do(id, func(c *Controller) error {
			_, err := c.Fire(context.Background(), TriggerGetStarted)
			return err
		}))
		msg, ok := pub.last(events.TopicScreenChanged.Name())
		require.True(t, ok)
		assert.Equal(t, id, msg.SessionID)
	}
}
