package cache

import "sync"

type Key[Primary, Secondary comparable] struct {
  P Primary
  S Secondary
}

// Cache is a mutex-guarded two-level map. The bot keeps the rows of the
// last rendered cart-edit list here, keyed by customer id and row index,
// so a stale tap on an outdated list can be detected.
type Cache[Primary, Secondary comparable, Value any] struct {
  mu     sync.Mutex
  values map[Primary]map[Secondary]Value
}

func NewCache[P, S comparable, V any]() *Cache[P, S, V] {
  return &Cache[P, S, V]{
    values: make(map[P]map[S]V),
  }
}

func (c *Cache[P, S, V]) Set(key Key[P, S], value V) {
  c.mu.Lock()
  defer c.mu.Unlock()

  if c.values[key.P] == nil {
    c.values[key.P] = make(map[S]V)
  }

  c.values[key.P][key.S] = value
}

func (c *Cache[P, S, V]) Get(key Key[P, S]) (value V, ok bool) {
  c.mu.Lock()
  defer c.mu.Unlock()

  if _, ok = c.values[key.P]; !ok {
    return value, false
  }

  value, ok = c.values[key.P][key.S]

  return value, ok
}

// ResetP drops every secondary entry below the primary key. Called before
// re-rendering a list so old row indexes cannot resolve anymore.
func (c *Cache[P, S, V]) ResetP(key P) {
  c.mu.Lock()
  defer c.mu.Unlock()

  delete(c.values, key)
}
