package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/nfrund/oncampus/internal/topicmgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Company string `json:"company"`
	Count   int    `json:"count,omitempty"`
}

var testEvent = NewEvent[testPayload]("pubsubtest.thing.happened", "Emitted by the pubsub tests")

func TestWatermillBridge_RoundTrip(t *testing.T) {
	bridge := NewWatermillBridge(8)
	t.Cleanup(func() { _ = bridge.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 1)
	err := bridge.Subscribe(ctx, testEvent.Name(), func(_ context.Context, msg Message) error {
		received <- msg
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, Publish(ctx, bridge, testEvent, "sess-1", testPayload{Company: "Acme", Count: 2}))

	select {
	case msg := <-received:
		assert.Equal(t, testEvent.Name(), msg.Topic)
		assert.Equal(t, "sess-1", msg.SessionID)
		assert.NotContains(t, msg.Metadata, metaKeyTopic)

		payload, err := testEvent.Decode(msg)
		require.NoError(t, err)
		assert.Equal(t, testPayload{Company: "Acme", Count: 2}, payload)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestNewEvent_RegistersTopic(t *testing.T) {
	topic, err := topicmgr.Default().Get("pubsubtest.thing.happened")
	require.NoError(t, err)

	assert.Equal(t, "pubsubtest", topic.Module())
	assert.Equal(t, []string{"company", "count"}, topic.Metadata()["payload_fields"])
	assert.Equal(t, "testPayload", topic.Metadata()["type_name"])
}

func TestMessageMapping_KeepsCustomMetadata(t *testing.T) {
	wm := mapToWatermillMessage(Message{
		Topic:     "a.b",
		SessionID: "s",
		Metadata:  map[string]string{"trigger": "submit"},
	})
	back := mapToPubSubMessage(wm)

	assert.Equal(t, "a.b", back.Topic)
	assert.Equal(t, "s", back.SessionID)
	assert.Equal(t, map[string]string{"trigger": "submit"}, back.Metadata)
}
