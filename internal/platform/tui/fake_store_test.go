package tui

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// memStore is an in-memory replay store.
type memStore struct {
	rows    map[int64]storage.ReplayEntry
	nextID  int64
	saves   int
	updates int
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[int64]storage.ReplayEntry)}
}

func (s *memStore) SaveReplay(e storage.ReplayEntry) (int64, error) {
	s.nextID++
	s.saves++
	e.ID = s.nextID
	e.CreatedAt = time.Unix(1700000000+s.nextID, 0)
	s.rows[e.ID] = e
	return e.ID, nil
}

func (s *memStore) UpdateReplay(id int64, e storage.ReplayEntry) error {
	old, ok := s.rows[id]
	if !ok {
		return storage.ErrReplayNotFound
	}
	s.updates++
	e.ID, e.CreatedAt = id, old.CreatedAt
	s.rows[id] = e
	return nil
}

func (s *memStore) Replay(id int64) (storage.ReplayEntry, error) {
	e, ok := s.rows[id]
	if !ok {
		return storage.ReplayEntry{}, storage.ErrReplayNotFound
	}
	return e, nil
}

func (s *memStore) RecentReplays(limit int) ([]storage.ReplayEntry, error) {
	ids := make([]int64, 0, len(s.rows))
	for id := range s.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	slices.Reverse(ids)

	out := make([]storage.ReplayEntry, 0, min(limit, len(ids)))
	for _, id := range ids[:min(limit, len(ids))] {
		e := s.rows[id]
		e.Data = nil
		out = append(out, e)
	}
	return out, nil
}

func (s *memStore) DeleteReplay(id int64) error {
	if _, ok := s.rows[id]; !ok {
		return storage.ErrReplayNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *memStore) CountReplays() (int, error) {
	return len(s.rows), nil
}

// recordingSink collects played events.
type recordingSink struct {
	events []flappy.Event
	closed bool
}

func (s *recordingSink) Play(e flappy.Event) { s.events = append(s.events, e) }
func (s *recordingSink) Close()              { s.closed = true }
