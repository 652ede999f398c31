// Package cache is a normalized response cache. Entities are stored once
// under their (type, id) key and query results are stored as roots that
// reference entities, so every root sees the latest copy of an entity.
package cache

import (
	"strings"
	"sync"
)

const (
	TypeUser     = "User"
	TypeProduct  = "Product"
	TypeCategory = "Category"
	TypePurchase = "Purchase"
	TypeRental   = "Rental"

	// RootMe holds the reference to the signed-in user.
	RootMe = "me"
)

// Key identifies a cached entity.
type Key struct {
	Type string
	ID   string
}

func (k Key) String() string { return k.Type + ":" + k.ID }

func UserKey(id string) Key     { return Key{Type: TypeUser, ID: id} }
func ProductKey(id string) Key  { return Key{Type: TypeProduct, ID: id} }
func CategoryKey(id string) Key { return Key{Type: TypeCategory, ID: id} }
func PurchaseKey(id string) Key { return Key{Type: TypePurchase, ID: id} }
func RentalKey(id string) Key   { return Key{Type: TypeRental, ID: id} }

// Root is a query result: the ordered entity references and, for paginated
// queries, the server-side total.
type Root struct {
	Refs  []Key
	Total int
}

// Store is safe for concurrent use. Concurrent writes to the same key are
// last-writer-wins.
type Store struct {
	mu       sync.RWMutex
	entities map[Key]any
	roots    map[string]Root
}

func New() *Store {
	return &Store{
		entities: make(map[Key]any),
		roots:    make(map[string]Root),
	}
}

// Write stores or replaces the entity under k.
func (s *Store) Write(k Key, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities[k] = v
}

// Merge replaces the entity under k with fn(current). current is nil when k
// is absent.
func (s *Store) Merge(k Key, fn func(current any) any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entities[k] = fn(s.entities[k])
}

func (s *Store) Read(k Key) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entities[k]
	return v, ok
}

// WriteRoot stores a query result under name.
func (s *Store) WriteRoot(name string, r Root) {
	refs := make([]Key, len(r.Refs))
	copy(refs, r.Refs)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.roots[name] = Root{Refs: refs, Total: r.Total}
}

// Root returns the query result stored under name. ok is false when the
// root is absent or any entity it references has been evicted.
func (s *Store) Root(name string) (Root, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.roots[name]
	if !ok {
		return Root{}, false
	}
	for _, k := range r.Refs {
		if _, ok := s.entities[k]; !ok {
			return Root{}, false
		}
	}
	refs := make([]Key, len(r.Refs))
	copy(refs, r.Refs)
	return Root{Refs: refs, Total: r.Total}, true
}

func (s *Store) EvictRoot(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.roots, name)
}

// Evict removes the entity under k together with every root referencing it.
func (s *Store) Evict(k Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entities, k)
	for name, r := range s.roots {
		for _, ref := range r.Refs {
			if ref == k {
				delete(s.roots, name)
				break
			}
		}
	}
}

// InvalidateRoots drops every root whose name starts with one of prefixes
// and returns how many were dropped.
func (s *Store) InvalidateRoots(prefixes ...string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for name := range s.roots {
		for _, p := range prefixes {
			if strings.HasPrefix(name, p) {
				delete(s.roots, name)
				n++
				break
			}
		}
	}
	return n
}

// GC removes entities no root references and returns how many were removed.
func (s *Store) GC() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	live := make(map[Key]struct{})
	for _, r := range s.roots {
		for _, k := range r.Refs {
			live[k] = struct{}{}
		}
	}
	n := 0
	for k := range s.entities {
		if _, ok := live[k]; !ok {
			delete(s.entities, k)
			n++
		}
	}
	return n
}

// Len returns the number of cached entities.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Get returns the entity under k if it is present and of type T.
func Get[T any](s *Store, k Key) (T, bool) {
	var zero T
	v, ok := s.Read(k)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Resolve reads root name and returns its entities in order.
func Resolve[T any](s *Store, name string) ([]T, int, bool) {
	r, ok := s.Root(name)
	if !ok {
		return nil, 0, false
	}
	out := make([]T, 0, len(r.Refs))
	for _, k := range r.Refs {
		v, ok := Get[T](s, k)
		if !ok {
			return nil, 0, false
		}
		out = append(out, v)
	}
	return out, r.Total, true
}
