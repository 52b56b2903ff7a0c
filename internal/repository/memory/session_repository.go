package memory

import (
	"sync"

	"laptop-advisor-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository is the process-wide session table. Sessions live until
// process restart; the base design has no eviction policy.
type SessionRepository struct {
	cache *cache.Cache
	locks sync.Map // session id -> *sync.Mutex
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
	r.locks.Delete(sessionID)
}

// Lock returns the per-session mutex. Turns against the same session must be
// serialized for the full handle-message duration, LLM call included, so the
// conversation log never interleaves; unrelated sessions stay independent.
func (r *SessionRepository) Lock(sessionID string) *sync.Mutex {
	mu, _ := r.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
