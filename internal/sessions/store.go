package sessions

import (
  "context"
  "sync"
  "time"

  "github.com/jellydator/ttlcache/v3"

  "github.com/elmerol/comanda/internal/models"
)

const DefaultTTL = 20 * time.Minute

// Store keeps one conversation record per customer id with a sliding TTL.
// Expiry is lazy: nothing sweeps in the background, a stale record is
// replaced with a fresh session on next access.
//
// Access runs under a per-key lock, so events for the same customer are
// processed one at a time while distinct customers proceed in parallel.
type Store struct {
  ttl   time.Duration
  cache *ttlcache.Cache[models.UserId, *models.Session]

  mu    sync.Mutex
  locks map[models.UserId]*sync.Mutex
}

func NewStore(ttl time.Duration) *Store {
  if ttl <= 0 {
    ttl = DefaultTTL
  }

  return &Store{
    ttl: ttl,
    cache: ttlcache.New[models.UserId, *models.Session](
      ttlcache.WithTTL[models.UserId, *models.Session](ttl),
    ),
    locks: make(map[models.UserId]*sync.Mutex),
  }
}

// Do runs fn with the session of the given customer id, holding that
// customer's lock for the whole call. The session it hands over is always
// live: expired or absent records are replaced with a fresh one first,
// and LastActivity is touched before fn runs.
func (s *Store) Do(_ context.Context, id models.UserId, fn func(session *models.Session)) {
  lock := s.lock(id)

  lock.Lock()
  defer lock.Unlock()

  session := s.fetch(id)
  session.LastActivity = time.Now()

  fn(session)

  s.cache.Set(id, session, s.ttl)
}

// Peek returns the current session without touching activity. Absent or
// expired ids report false.
func (s *Store) Peek(id models.UserId) (*models.Session, bool) {
  lock := s.lock(id)

  lock.Lock()
  defer lock.Unlock()

  item := s.cache.Get(id, ttlcache.WithDisableTouchOnHit[models.UserId, *models.Session]())
  if item == nil {
    return nil, false
  }

  session := item.Value()
  if session.Expired(s.ttl, time.Now()) {
    return nil, false
  }

  return session, true
}

func (s *Store) Delete(id models.UserId) {
  lock := s.lock(id)

  lock.Lock()
  defer lock.Unlock()

  s.cache.Delete(id)
}

func (s *Store) fetch(id models.UserId) *models.Session {
  now := time.Now()

  item := s.cache.Get(id)
  if item == nil {
    return models.NewSession(id, now)
  }

  session := item.Value()

  // The cache TTL slides on hit; the explicit check covers records
  // revived by a Set after their activity went stale.
  if session.Expired(s.ttl, now) {
    return models.NewSession(id, now)
  }

  return session
}

func (s *Store) lock(id models.UserId) *sync.Mutex {
  s.mu.Lock()
  defer s.mu.Unlock()

  lock, ok := s.locks[id]
  if !ok {
    lock = new(sync.Mutex)
    s.locks[id] = lock
  }

  return lock
}
