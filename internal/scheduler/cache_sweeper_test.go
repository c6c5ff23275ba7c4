package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-analytics-api/internal/config"
	"github.com/vfg2006/restaurant-analytics-api/pkg/cache"
)

func sweeperConfig(active bool) *config.Config {
	cfg := &config.Config{}
	cfg.Cache.SweepCron = "*/10 * * * *"
	cfg.Cache.SweepActive = active
	return cfg
}

func TestCacheSweeperService_DesabilitadoNaoAgenda(t *testing.T) {
	service := NewCacheSweeperService(cache.NewMemoryCache(), sweeperConfig(false))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, service.Start(ctx))
	assert.False(t, service.scheduler.IsRunning())
}

func TestCacheSweeperService_CronInvalido(t *testing.T) {
	cfg := sweeperConfig(true)
	cfg.Cache.SweepCron = "isso não é cron"

	service := NewCacheSweeperService(cache.NewMemoryCache(), cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.Error(t, service.Start(ctx))
}

func TestCacheSweeperService_SweepRemoveExpiradas(t *testing.T) {
	now := time.Now()
	clock := now
	memoryCache := cache.NewMemoryCache().WithClock(func() time.Time { return clock })

	memoryCache.Set("expirada", []byte("{}"), 5*time.Minute)
	memoryCache.Set("valida", []byte("{}"), time.Hour)

	service := NewCacheSweeperService(memoryCache, sweeperConfig(true))

	clock = now.Add(10 * time.Minute)
	service.sweep()

	assert.Equal(t, 1, memoryCache.Len())
	_, ok := memoryCache.Get("valida")
	assert.True(t, ok)
}
