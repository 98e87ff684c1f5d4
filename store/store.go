// Package store defines the read-only stores the settings accessor reads
// from: a key→string application-settings store and a named
// connection-string store. Implementations must distinguish an absent key
// from one stored with an empty value.
package store

import "sync"

// Store is a read-only view over named string settings.
type Store interface {
	Lookup(key string) (string, bool)
}

// ConnectionString is one entry of the connection-string store. The
// accessor consumes only Value; Provider is carried through for callers
// that dispatch on driver name.
type ConnectionString struct {
	Value    string
	Provider string
}

// ConnectionStringStore is a read-only view over named connection strings.
type ConnectionStringStore interface {
	LookupConnectionString(name string) (ConnectionString, bool)
}

// MapStore is a map-backed Store, safe for concurrent use. It is the
// workhorse for programmatic population and test fixtures.
type MapStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMapStore creates a MapStore seeded with values. The map is copied;
// the caller keeps ownership of the argument.
func NewMapStore(values map[string]string) *MapStore {
	s := &MapStore{values: make(map[string]string, len(values))}
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// Lookup implements Store.
func (s *MapStore) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

// Set adds or replaces a setting.
func (s *MapStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Delete removes a setting.
func (s *MapStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Len reports the number of stored settings.
func (s *MapStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// ConnMap is a map-backed ConnectionStringStore, safe for concurrent use.
type ConnMap struct {
	mu    sync.RWMutex
	conns map[string]ConnectionString
}

// NewConnMap creates a ConnMap seeded with conns. The map is copied.
func NewConnMap(conns map[string]ConnectionString) *ConnMap {
	s := &ConnMap{conns: make(map[string]ConnectionString, len(conns))}
	for k, v := range conns {
		s.conns[k] = v
	}
	return s
}

// LookupConnectionString implements ConnectionStringStore.
func (s *ConnMap) LookupConnectionString(name string) (ConnectionString, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	conn, ok := s.conns[name]
	return conn, ok
}

// Set adds or replaces a connection string.
func (s *ConnMap) Set(name string, conn ConnectionString) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns[name] = conn
}

type layered []Store

// Layered combines stores with first-hit-wins precedence. A layer that
// holds a key with an empty value does not shadow later layers, so a
// blank entry in a config file still falls through to the environment.
func Layered(stores ...Store) Store {
	return layered(stores)
}

// Lookup implements Store.
func (l layered) Lookup(key string) (string, bool) {
	for _, s := range l {
		if value, ok := s.Lookup(key); ok && value != "" {
			return value, true
		}
	}
	return "", false
}
