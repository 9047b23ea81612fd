package memory

import (
	"context"
	"sync"
	"time"

	"github.com/marcelsud/locadora-web/notify"
)

/* In-memory notify.Store used when REDIS_ADDR is empty
 * Queues expire ttl after their last push, checked lazily
 */
type Store struct {
	mu     sync.Mutex
	queues map[string]*queue
	ttl    time.Duration
	now    func() time.Time
}

type queue struct {
	items     []notify.Notification
	expiresAt time.Time
}

// NewStore creates a memory store. ttl <= 0 keeps queues forever.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		queues: make(map[string]*queue),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *Store) Push(ctx context.Context, session string, n notify.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.queues[session]
	if !ok || s.expired(q) {
		q = &queue{}
		s.queues[session] = q
	}
	q.items = append(q.items, n)
	if s.ttl > 0 {
		q.expiresAt = s.now().Add(s.ttl)
	}
	return nil
}

func (s *Store) Pop(ctx context.Context, session string) ([]notify.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.queues[session]
	if !ok {
		return nil, nil
	}
	delete(s.queues, session)
	if s.expired(q) {
		return nil, nil
	}
	return q.items, nil
}

// Pending counts notifications not yet shown, dropping expired queues
func (s *Store) Pending(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for id, q := range s.queues {
		if s.expired(q) {
			delete(s.queues, id)
			continue
		}
		total += int64(len(q.items))
	}
	return total, nil
}

func (s *Store) Close(ctx context.Context) error {
	return nil
}

func (s *Store) expired(q *queue) bool {
	return s.ttl > 0 && !s.now().Before(q.expiresAt)
}
