package enquiry

import (
	"time"

	"github.com/zekroTJA/timedmap"
)

// Store keeps live sessions in memory with a sliding TTL. Sessions are
// never persisted; an expired session is evicted and its staged documents
// released through the eviction callback.
type Store struct {
	tm      *timedmap.TimedMap
	ttl     time.Duration
	onEvict func(*Session)
}

func NewStore(ttl, sweepInterval time.Duration, onEvict func(*Session)) *Store {
	return &Store{
		tm:      timedmap.New(sweepInterval),
		ttl:     ttl,
		onEvict: onEvict,
	}
}

func (s *Store) Put(session *Session) {
	s.tm.Set(session.ID, session, s.ttl, func(value interface{}) {
		if sess, ok := value.(*Session); ok && s.onEvict != nil {
			s.onEvict(sess)
		}
	})
}

// Get returns the session and refreshes its TTL, keeping active checkouts
// alive.
func (s *Store) Get(id string) (*Session, bool) {
	value := s.tm.GetValue(id)
	if value == nil {
		return nil, false
	}
	session, ok := value.(*Session)
	if !ok {
		return nil, false
	}
	s.tm.SetExpires(id, s.ttl)
	return session, true
}

// Remove drops a session without firing the eviction callback; the caller
// handles teardown.
func (s *Store) Remove(id string) {
	s.tm.Remove(id)
}

func (s *Store) Close() {
	s.tm.StopCleaner()
}
