package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-analytics-api/internal/config"
	"github.com/vfg2006/restaurant-analytics-api/pkg/cache"
)

// CacheSweeperService remove periodicamente as entradas expiradas do cache
// de respostas. Sem a varredura as entradas expiradas só sairiam do mapa
// quando alguém pedisse a mesma chave de novo.
type CacheSweeperService struct {
	scheduler *gocron.Scheduler
	cache     cache.Cache
	cron      string
	enabled   bool
}

func NewCacheSweeperService(c cache.Cache, appConfig *config.Config) *CacheSweeperService {
	return &CacheSweeperService{
		scheduler: gocron.NewScheduler(time.Local),
		cache:     c,
		cron:      appConfig.Cache.SweepCron,
		enabled:   appConfig.Cache.SweepActive,
	}
}

// Start inicia o agendador da varredura
func (s *CacheSweeperService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Varredura do cache desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cron).Info("Iniciando agendador de varredura do cache")

	_, err := s.scheduler.Cron(s.cron).Do(func() {
		s.sweep()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura do cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de varredura do cache")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CacheSweeperService) sweep() {
	startTime := time.Now()
	removed := s.cache.Sweep()

	logrus.WithFields(logrus.Fields{
		"removed_entries":   removed,
		"remaining_entries": s.cache.Len(),
		"duration":          time.Since(startTime).String(),
	}).Info("Varredura do cache concluída")
}
