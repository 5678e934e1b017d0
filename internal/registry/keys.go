package registry

import (
	"github.com/nfrund/oncampus/internal/pubsub"
	"github.com/nfrund/oncampus/internal/session"
)

// Keys for the services the application shares with its modules.
const (
	SessionStoreKey Key[*session.Store]    = "session.store"
	SubscriberKey   Key[pubsub.Subscriber] = "pubsub.subscriber"
)
