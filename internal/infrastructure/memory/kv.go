// Package memory implementa os stores chave-valor em memória, usados quando
// não há Redis configurado (desenvolvimento e instância única).
package memory

import (
	"sync"
	"time"
)

type entry struct {
	value     string
	expiresAt time.Time // zero = sem expiração
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// kv mapa protegido por mutex com expiração preguiçosa.
type kv struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func newKV() *kv {
	return &kv{entries: make(map[string]entry), now: time.Now}
}

func (s *kv) deadline(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return s.now().Add(ttl)
}

// getLocked exige s.mu.
func (s *kv) getLocked(key string) (string, bool) {
	e, ok := s.entries[key]
	if !ok {
		return "", false
	}
	if e.expired(s.now()) {
		delete(s.entries, key)
		return "", false
	}
	return e.value, true
}

func (s *kv) get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(key)
}

func (s *kv) set(key, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, expiresAt: s.deadline(ttl)}
}

func (s *kv) setNX(key, value string, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.getLocked(key); ok {
		return false
	}
	s.entries[key] = entry{value: value, expiresAt: s.deadline(ttl)}
	return true
}

func (s *kv) getDel(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.getLocked(key)
	delete(s.entries, key)
	return v, ok
}

func (s *kv) del(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}
