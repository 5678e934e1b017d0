package topicmgr

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Registry manages the collection of registered topics.
type Registry struct {
	entries map[string]*RegistryEntry
	mu      sync.RWMutex
}

// NewRegistry creates a new topic registry
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry that package-level topics register with.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a topic to the registry
func (r *Registry) Register(topic Topic) error {
	if topic == nil {
		return &TopicError{Type: ErrorValidationFailed, Message: "cannot register nil topic"}
	}
	name := topic.Name()
	if name == "" {
		return &TopicError{Type: ErrorValidationFailed, Message: "topic name cannot be empty"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return &TopicError{
			Type:    ErrorDuplicateRegistration,
			Topic:   name,
			Message: fmt.Sprintf("topic already registered: %s", name),
		}
	}
	r.entries[name] = &RegistryEntry{Topic: topic, RegisteredAt: time.Now()}
	return nil
}

// MustRegister registers a topic and panics on error. Topics are declared at
// package level, so a failure here is a programming error.
func (r *Registry) MustRegister(topic Topic) {
	if err := r.Register(topic); err != nil {
		panic(err)
	}
}

// Get retrieves a topic by name
func (r *Registry) Get(name string) (Topic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.entries[name]
	if !exists {
		return nil, &TopicError{
			Type:    ErrorTopicNotFound,
			Topic:   name,
			Message: fmt.Sprintf("topic not found: %s", name),
		}
	}
	return entry.Topic, nil
}

// List returns all registered topics sorted by name.
func (r *Registry) List() []Topic {
	r.mu.RLock()
	defer r.mu.RUnlock()

	topics := make([]Topic, 0, len(r.entries))
	for _, entry := range r.entries {
		topics = append(topics, entry.Topic)
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Name() < topics[j].Name() })
	return topics
}

// ListByModule returns topics for a specific module
func (r *Registry) ListByModule(module string) []Topic {
	var topics []Topic
	for _, topic := range r.List() {
		if topic.Module() == module {
			topics = append(topics, topic)
		}
	}
	return topics
}
