package outbox

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"dailyapps/internal/util"
)

var ErrMessageNotFound = errors.New("outbox message not found")

// DefaultMaxAttempts is how many publish failures a message survives before
// it is marked failed.
const DefaultMaxAttempts = 5

// DefaultRetainSettled is how many sent or failed messages a store keeps
// before dropping the oldest of them.
const DefaultRetainSettled = 1000

// Store keeps outbox messages in memory in insertion order. Pending messages
// are never dropped.
type Store struct {
	mu          sync.Mutex
	messages    []*Message
	byID        map[string]*Message
	maxAttempts int
	retain      int
	settled     int
	totals      map[Status]int
}

type StoreOption func(*Store)

// WithRetainSettled caps how many sent or failed messages stay readable
// through Get. Zero drops them as soon as they settle.
func WithRetainSettled(n int) StoreOption {
	return func(s *Store) {
		if n >= 0 {
			s.retain = n
		}
	}
}

func NewStore(maxAttempts int, opts ...StoreOption) *Store {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	s := &Store{
		byID:        make(map[string]*Message),
		maxAttempts: maxAttempts,
		retain:      DefaultRetainSettled,
		totals:      map[Status]int{StatusPending: 0, StatusSent: 0, StatusFailed: 0},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enqueue stores msg as pending. ID and CreatedAt are filled when empty.
func (s *Store) Enqueue(_ context.Context, msg Message) (string, error) {
	if msg.Topic == "" {
		return "", fmt.Errorf("outbox message %q: empty topic", msg.MessageType)
	}
	if msg.ID == "" {
		msg.ID = util.GenerateUUID()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	msg.Status = StatusPending
	msg.Payload = slices.Clone(msg.Payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[msg.ID]; ok {
		return "", fmt.Errorf("outbox message %s already enqueued", msg.ID)
	}
	m := &msg
	s.messages = append(s.messages, m)
	s.byID[m.ID] = m
	s.totals[StatusPending]++
	return m.ID, nil
}

// Pending returns up to limit pending messages, oldest first.
func (s *Store) Pending(ctx context.Context, limit int) ([]Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Message
	for _, m := range s.messages {
		if limit > 0 && len(out) == limit {
			break
		}
		if m.Status == StatusPending {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (s *Store) MarkSent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%s: %w", id, ErrMessageNotFound)
	}
	if m.Status != StatusPending {
		return nil
	}
	now := time.Now()
	m.SentAt = &now
	s.settle(m, StatusSent)
	return nil
}

// MarkFailed records a failed attempt. The message stays pending until it
// runs out of attempts.
func (s *Store) MarkFailed(_ context.Context, id string) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.byID[id]
	if !ok {
		return "", fmt.Errorf("%s: %w", id, ErrMessageNotFound)
	}
	if m.Status != StatusPending {
		return m.Status, nil
	}
	m.Attempts++
	if m.Attempts >= s.maxAttempts {
		s.settle(m, StatusFailed)
	}
	return m.Status, nil
}

// settle moves m to a final status and drops the oldest settled messages
// beyond the retention cap. Callers hold s.mu.
func (s *Store) settle(m *Message, status Status) {
	m.Status = status
	s.totals[StatusPending]--
	s.totals[status]++
	s.settled++
	if s.settled <= s.retain {
		return
	}
	drop := s.settled - s.retain
	s.messages = slices.DeleteFunc(s.messages, func(old *Message) bool {
		if drop == 0 || old.Status == StatusPending {
			return false
		}
		delete(s.byID, old.ID)
		drop--
		s.settled--
		return true
	})
}

// Get returns a copy of the message with the given id.
func (s *Store) Get(id string) (Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.byID[id]
	if !ok {
		return Message{}, fmt.Errorf("%s: %w", id, ErrMessageNotFound)
	}
	return *m, nil
}

// Stats counts every message ever enqueued by status, dropped ones included.
func (s *Store) Stats() map[Status]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.totals)
}

// Len reports how many messages are held in memory.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}
