package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
)

// ErrNotFound is returned by Sink.Read for a key that was never written.
var ErrNotFound = errors.New("store: key not found")

// EventType describes a change notification from a sink.
type EventType int

const (
	// EventKeyChanged means the blob under Key was written or removed.
	EventKeyChanged EventType = iota
	// EventInvalidated means the sink cannot tell what changed and every
	// key should be reread.
	EventInvalidated
)

// Event is emitted by Sink.Watch.
type Event struct {
	Type EventType
	Key  string
}

// Sink persists opaque blobs by key. Implementations must be safe for
// concurrent use.
type Sink interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	// Watch streams changes made by anyone, this process included, until
	// ctx is done. The channel is closed when watching stops.
	Watch(ctx context.Context) (<-chan Event, error)
	Close() error
}

// MemorySink keeps blobs in a map. It is used for tests and for `sink:
// memory`, where nothing survives the process.
type MemorySink struct {
	mu       sync.RWMutex
	data     map[string][]byte
	watchers map[chan Event]struct{}
}

// NewMemorySink returns an empty sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{
		data:     make(map[string][]byte),
		watchers: make(map[chan Event]struct{}),
	}
}

func (m *MemorySink) Read(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemorySink) Write(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	m.data[key] = append([]byte(nil), data...)
	m.broadcast(Event{Type: EventKeyChanged, Key: key})
	m.mu.Unlock()
	return nil
}

func (m *MemorySink) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	if _, ok := m.data[key]; ok {
		delete(m.data, key)
		m.broadcast(Event{Type: EventKeyChanged, Key: key})
	}
	m.mu.Unlock()
	return nil
}

func (m *MemorySink) Keys(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemorySink) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 64)
	m.mu.Lock()
	m.watchers[ch] = struct{}{}
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		if _, ok := m.watchers[ch]; ok {
			delete(m.watchers, ch)
			close(ch)
		}
		m.mu.Unlock()
	}()
	return ch, nil
}

// Close ends every watch.
func (m *MemorySink) Close() error {
	m.mu.Lock()
	for ch := range m.watchers {
		close(ch)
	}
	m.watchers = make(map[chan Event]struct{})
	m.mu.Unlock()
	return nil
}

// broadcast must be called with mu held.
func (m *MemorySink) broadcast(ev Event) {
	for ch := range m.watchers {
		select {
		case ch <- ev:
		default:
		}
	}
}

func hasKindPrefix(key string) bool {
	return strings.HasPrefix(key, string(KindMoods)+"-") || strings.HasPrefix(key, string(KindNotes)+"-")
}
