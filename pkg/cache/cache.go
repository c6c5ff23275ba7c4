package cache

import (
	"sync"
	"time"
)

// Cache é o serviço de memoização por TTL injetado nos middlewares e no
// sweeper. As entradas são imutáveis depois de inseridas; uma recomputação
// duplicada em corrida custa no máximo uma consulta extra.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, payload []byte, ttl time.Duration)
	Evict(key string)
	Sweep() int
	Len() int
}

type entry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryCache é a implementação em memória usada em produção: um mapa
// protegido por RWMutex, com deadline próprio por entrada. O estado é
// consultivo e descartável; perder tudo num restart é aceitável.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// WithClock troca a fonte de tempo; útil nos testes de expiração.
func (c *MemoryCache) WithClock(now func() time.Time) *MemoryCache {
	c.now = now
	return c
}

func (c *MemoryCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}

	return e.payload, true
}

func (c *MemoryCache) Set(key string, payload []byte, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry{
		payload:   payload,
		expiresAt: c.now().Add(ttl),
	}
	c.mu.Unlock()
}

func (c *MemoryCache) Evict(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Sweep remove entradas expiradas respeitando o deadline individual de
// cada uma, para que entradas registradas com TTL mais longo (ex.: filtros
// com 1h) não sejam descartadas cedo demais. Devolve quantas saíram.
func (c *MemoryCache) Sweep() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}

	return removed
}

func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
