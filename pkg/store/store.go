// Package store holds the journal in memory and writes every change
// through to a pluggable Sink (files, redis or memory).
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/mood/pkg/mood"
	"tableflip.dev/mood/pkg/timeutil"
)

// MaxDay is the largest day-of-month a record can use.
const MaxDay = 31

// Change tells subscribers which month and kind of data changed.
type Change struct {
	Kind  Kind
	Month time.Time
	// Remote is set when the change came from the sink rather than from
	// this Store.
	Remote bool
	// Reload is set when everything was reread and Kind and Month are
	// empty.
	Reload bool
}

// Store is the in-memory journal. Readers get deep copies so a render sees
// one consistent snapshot.
type Store struct {
	sink Sink
	log  *zap.Logger

	mu    sync.RWMutex
	moods map[string]mood.Month
	notes map[string]mood.Notes

	subMu  sync.Mutex
	subs   map[int]func(Change)
	nextID int
}

// New wraps sink. Call Load before reading.
func New(sink Sink, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		sink:  sink,
		log:   log,
		moods: make(map[string]mood.Month),
		notes: make(map[string]mood.Notes),
		subs:  make(map[int]func(Change)),
	}
}

// Load replaces the in-memory journal with what the sink holds. Blobs that
// do not decode are logged and skipped.
func (s *Store) Load(ctx context.Context) error {
	keys, err := s.sink.Keys(ctx)
	if err != nil {
		return fmt.Errorf("store: list keys: %w", err)
	}

	moods := make(map[string]mood.Month)
	notes := make(map[string]mood.Notes)
	for _, key := range keys {
		kind, month, err := ParseKey(key)
		if err != nil {
			s.log.Warn("skipping key", zap.String("key", key), zap.Error(err))
			continue
		}
		data, err := s.sink.Read(ctx, key)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if err := decodeInto(kind, MonthKey(month), data, moods, notes); err != nil {
			s.log.Warn("undecodable blob", zap.String("key", key), zap.Error(err))
		}
	}

	s.mu.Lock()
	s.moods = moods
	s.notes = notes
	s.mu.Unlock()
	return nil
}

// reload rereads one key after a sink event.
func (s *Store) reload(ctx context.Context, key string) (Change, error) {
	kind, month, err := ParseKey(key)
	if err != nil {
		return Change{}, err
	}
	mk := MonthKey(month)

	data, err := s.sink.Read(ctx, key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Change{}, err
	}

	moods := make(map[string]mood.Month)
	notes := make(map[string]mood.Notes)
	if err == nil {
		if err := decodeInto(kind, mk, data, moods, notes); err != nil {
			return Change{}, fmt.Errorf("store: decode %s: %w", key, err)
		}
	}

	s.mu.Lock()
	switch kind {
	case KindMoods:
		if m, ok := moods[mk]; ok {
			s.moods[mk] = m
		} else {
			delete(s.moods, mk)
		}
	case KindNotes:
		if n, ok := notes[mk]; ok {
			s.notes[mk] = n
		} else {
			delete(s.notes, mk)
		}
	}
	s.mu.Unlock()
	return Change{Kind: kind, Month: month, Remote: true}, nil
}

func decodeInto(kind Kind, mk string, data []byte, moods map[string]mood.Month, notes map[string]mood.Notes) error {
	switch kind {
	case KindMoods:
		var m mood.Month
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		if m = m.Clone(); len(m) > 0 {
			moods[mk] = m
		}
	case KindNotes:
		var n mood.Notes
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		if n = n.Clone(); len(n) > 0 {
			notes[mk] = n
		}
	}
	return nil
}

// Moods returns a copy of the month containing t.
func (s *Store) Moods(month time.Time) mood.Month {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moods[MonthKey(month)].Clone()
}

// Get returns a copy of one day's moods.
func (s *Store) Get(month time.Time, day int) []mood.Mood {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moods[MonthKey(month)].Day(day)
}

// Set replaces one day's moods. An empty list removes the day.
func (s *Store) Set(ctx context.Context, month time.Time, day int, moods []mood.Mood) error {
	_, err := s.Update(ctx, month, day, func([]mood.Mood) ([]mood.Mood, bool) {
		return moods, true
	})
	return err
}

// Update reads one day's moods, passes a copy to fn and persists what fn
// returns, all under one hold of the write lock so concurrent updates of
// the same day never lose each other. When fn reports no change nothing is
// written. Update returns the day's moods afterwards.
func (s *Store) Update(ctx context.Context, month time.Time, day int, fn func(current []mood.Mood) ([]mood.Mood, bool)) ([]mood.Mood, error) {
	if err := checkDay(day); err != nil {
		return nil, err
	}
	mk := MonthKey(month)

	s.mu.Lock()
	moods, changed := fn(s.moods[mk].Day(day))
	if !changed {
		s.mu.Unlock()
		return moods, nil
	}
	next := s.moods[mk].Clone()
	if len(moods) == 0 {
		delete(next, day)
	} else {
		next[day] = append([]mood.Mood(nil), moods...)
	}
	if err := s.persist(ctx, Key(KindMoods, month), next, len(next) == 0); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if len(next) == 0 {
		delete(s.moods, mk)
	} else {
		s.moods[mk] = next
	}
	s.mu.Unlock()

	s.notify(Change{Kind: KindMoods, Month: timeutil.FirstOfMonth(month)})
	return next.Day(day), nil
}

// Notes returns a copy of the notes of the month containing t.
func (s *Store) Notes(month time.Time) mood.Notes {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notes[MonthKey(month)].Clone()
}

// Note returns one day's note, or "".
func (s *Store) Note(month time.Time, day int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notes[MonthKey(month)][day]
}

// SetNote stores a note. Blank text removes it.
func (s *Store) SetNote(ctx context.Context, month time.Time, day int, text string) error {
	if err := checkDay(day); err != nil {
		return err
	}
	mk := MonthKey(month)

	s.mu.Lock()
	next := s.notes[mk].Clone()
	if strings.TrimSpace(text) == "" {
		delete(next, day)
	} else {
		next[day] = text
	}
	if err := s.persist(ctx, Key(KindNotes, month), next, len(next) == 0); err != nil {
		s.mu.Unlock()
		return err
	}
	if len(next) == 0 {
		delete(s.notes, mk)
	} else {
		s.notes[mk] = next
	}
	s.mu.Unlock()

	s.notify(Change{Kind: KindNotes, Month: timeutil.FirstOfMonth(month)})
	return nil
}

// persist must be called with mu held.
func (s *Store) persist(ctx context.Context, key string, v any, empty bool) error {
	if empty {
		return s.sink.Delete(ctx, key)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	return s.sink.Write(ctx, key, data)
}

// Months lists every month holding moods or notes, oldest first.
func (s *Store) Months() []time.Time {
	s.mu.RLock()
	seen := make(map[string]struct{}, len(s.moods)+len(s.notes))
	for mk := range s.moods {
		seen[mk] = struct{}{}
	}
	for mk := range s.notes {
		seen[mk] = struct{}{}
	}
	s.mu.RUnlock()

	out := make([]time.Time, 0, len(seen))
	for mk := range seen {
		t, err := time.Parse(MonthLayout, mk)
		if err != nil {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Subscribe registers fn for every change, local or remote. fn runs on the
// goroutine that made the change. The returned func unsubscribes.
func (s *Store) Subscribe(fn func(Change)) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *Store) notify(c Change) {
	s.subMu.Lock()
	fns := make([]func(Change), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}

// Watch follows the sink, rereading whatever it reports changed, and
// forwards each change to subscribers and to the returned channel until ctx
// is done.
func (s *Store) Watch(ctx context.Context) (<-chan Change, error) {
	events, err := s.sink.Watch(ctx)
	if err != nil {
		return nil, err
	}

	changes := make(chan Change, 16)
	go func() {
		defer close(changes)
		for ev := range events {
			var (
				c   Change
				err error
			)
			switch ev.Type {
			case EventKeyChanged:
				c, err = s.reload(ctx, ev.Key)
			default:
				c, err = Change{Reload: true, Remote: true}, s.Load(ctx)
			}
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				s.log.Warn("reload after change", zap.String("key", ev.Key), zap.Error(err))
				continue
			}
			s.notify(c)
			select {
			case changes <- c:
			case <-ctx.Done():
				return
			}
		}
	}()
	return changes, nil
}

// Close releases the sink.
func (s *Store) Close() error {
	return s.sink.Close()
}

func checkDay(day int) error {
	if day < 1 || day > MaxDay {
		return fmt.Errorf("store: day %d out of range 1..%d", day, MaxDay)
	}
	return nil
}
