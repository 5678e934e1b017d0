package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/nfrund/oncampus/internal/domain"
	"github.com/nfrund/oncampus/internal/pubsub"
	"github.com/nfrund/oncampus/internal/topicmgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu   sync.Mutex
	msgs []pubsub.Message
	err  error
}

func (p *recordingPublisher) Publish(_ context.Context, msg pubsub.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.msgs = append(p.msgs, msg)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func TestEmit_StampsSession(t *testing.T) {
	pub := &recordingPublisher{}
	emitter := NewEmitter(pub, nil).ForSession("abc")

	Emit(context.Background(), emitter, TopicScreenChanged, ScreenChanged{
		From:    domain.ScreenStudentLanding,
		To:      domain.ScreenStudentSignup,
		Trigger: "join",
	})

	require.Len(t, pub.msgs, 1)
	msg := pub.msgs[0]
	assert.Equal(t, "session.screen.changed", msg.Topic)
	assert.Equal(t, "abc", msg.SessionID)

	var got ScreenChanged
	require.NoError(t, json.Unmarshal(msg.Payload, &got))
	assert.Equal(t, domain.ScreenStudentSignup, got.To)
}

func TestEmit_NeverFails(t *testing.T) {
	assert.NotPanics(t, func() {
		Emit(context.Background(), nil, TopicDemoRequested, DemoRequested{})
		Emit(context.Background(), NewEmitter(nil, nil), TopicDemoRequested, DemoRequested{})
		Emit(context.Background(), NewEmitter(&recordingPublisher{err: errors.New("closed")}, nil),
			TopicDemoRequested, DemoRequested{})
	})
}

func TestPlacementLog_PublishesPlacement(t *testing.T) {
	pub := &recordingPublisher{}
	recorder := NewPlacementLog(NewEmitter(pub, nil), "IIT Delhi", nil)

	placement := domain.OfflinePlacement{
		CompanyName: "Acme",
		Role:        "SDE",
		StudentName: "Ana",
		OfferType:   "fulltime",
		CTC:         "12 LPA",
	}
	require.NoError(t, recorder.RecordPlacement(context.Background(), placement))

	require.Len(t, pub.msgs, 1)
	got, err := TopicPlacementRecorded.Decode(pub.msgs[0])
	require.NoError(t, err)
	assert.Equal(t, PlacementRecorded{University: "IIT Delhi", Placement: placement}, got)
}

func TestTopicsAreRegistered(t *testing.T) {
	for _, name := range AllTopics() {
		_, err := topicmgr.Default().Get(name)
		assert.NoError(t, err, name)
	}
}
