package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetSet(t *testing.T) {
	c := NewMemoryCache()

	_, ok := c.Get("inexistente")
	assert.False(t, ok, "chave nunca inserida não deve ser encontrada")

	c.Set("chave", []byte("valor"), time.Minute)

	payload, ok := c.Get("chave")
	require.True(t, ok)
	assert.Equal(t, []byte("valor"), payload)
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCache_Expiracao(t *testing.T) {
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache().WithClock(func() time.Time { return current })

	c.Set("chave", []byte("valor"), 5*time.Minute)

	_, ok := c.Get("chave")
	assert.True(t, ok, "entrada dentro do TTL deve ser servida")

	current = current.Add(5*time.Minute + time.Second)

	_, ok = c.Get("chave")
	assert.False(t, ok, "entrada expirada não deve ser servida")
}

func TestMemoryCache_Evict(t *testing.T) {
	c := NewMemoryCache()
	c.Set("chave", []byte("valor"), time.Minute)

	c.Evict("chave")

	_, ok := c.Get("chave")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCache_SweepRespeitaTTLIndividual(t *testing.T) {
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache().WithClock(func() time.Time { return current })

	c.Set("curta", []byte("a"), 5*time.Minute)
	c.Set("longa", []byte("b"), time.Hour)

	// Dez minutos depois apenas a entrada curta expirou.
	current = current.Add(10 * time.Minute)

	removed := c.Sweep()
	assert.Equal(t, 1, removed)

	_, ok := c.Get("curta")
	assert.False(t, ok)

	payload, ok := c.Get("longa")
	require.True(t, ok, "entrada com TTL longo não pode ser varrida antes da hora")
	assert.Equal(t, []byte("b"), payload)
}
