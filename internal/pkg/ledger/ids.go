package ledger

import (
	"sync"

	"github.com/piresc/fairpay/internal/pkg/models"
)

// IDSource issues millisecond-timestamp transaction ids that never repeat,
// even when several entries land in the same millisecond.
type IDSource struct {
	mu   sync.Mutex
	last int64
	now  func() int64
}

// NewIDSource creates an id source backed by the wall clock
func NewIDSource() *IDSource {
	return &IDSource{now: models.NowMillis}
}

// NewIDSourceWithClock creates an id source backed by the given millisecond clock
func NewIDSourceWithClock(now func() int64) *IDSource {
	return &IDSource{now: now}
}

// Next returns max(now, last+1)
func (s *IDSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// Observe makes sure later ids are issued past id
func (s *IDSource) Observe(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id > s.last {
		s.last = id
	}
}
