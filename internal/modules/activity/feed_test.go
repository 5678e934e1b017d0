package activity

import (
	"testing"

	"github.com/nfrund/oncampus/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func msg(topic, payload string) pubsub.Message {
	return pubsub.Message{Topic: topic, SessionID: "s1", Payload: []byte(payload)}
}

func TestFeed_EvictsOldest(t *testing.T) {
	f := NewFeed(3)
	for _, p := range []string{`1`, `2`, `3`, `4`} {
		f.Add(msg("a", p))
	}

	assert.Equal(t, 3, f.Len())
	got := f.Recent("", 0)
	require.Len(t, got, 3)
	assert.JSONEq(t, `4`, string(got[0].Payload))
	assert.JSONEq(t, `2`, string(got[2].Payload))
}

func TestFeed_FilterAndLimit(t *testing.T) {
	f := NewFeed(10)
	f.Add(msg("a", `{"n":1}`))
	f.Add(msg("b", `{"n":2}`))
	f.Add(msg("a", `{"n":3}`))

	got := f.Recent("a", 0)
	require.Len(t, got, 2)
	assert.JSONEq(t, `{"n":3}`, string(got[0].Payload))

	got = f.Recent("", 1)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Topic)
	assert.Empty(t, f.Recent("c", 0))
}

func TestFeed_QuotesInvalidJSON(t *testing.T) {
	f := NewFeed(0)
	f.Add(msg("a", "not json"))

	got := f.Recent("", 0)
	require.Len(t, got, 1)
	assert.JSONEq(t, `"not json"`, string(got[0].Payload))
}
