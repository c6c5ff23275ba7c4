package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-analytics-api/internal/api"
	"github.com/vfg2006/restaurant-analytics-api/internal/config"
	"github.com/vfg2006/restaurant-analytics-api/internal/scheduler"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/dashboarding"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/exporting"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/metricating"
	"github.com/vfg2006/restaurant-analytics-api/pkg/cache"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	saleRepo := repository.NewSaleRepository(pgConn)
	productSaleRepo := repository.NewProductSaleRepository(pgConn)
	dimensionRepo := repository.NewDimensionRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	dashboardRepo := repository.NewDashboardRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	metricService := metricating.NewService(saleRepo, productSaleRepo, dimensionRepo)
	insightService := insighting.NewService(saleRepo, productSaleRepo)
	exportService := exporting.NewService(saleRepo)
	dashboardService := dashboarding.NewService(dashboardRepo)

	responseCache := cache.NewMemoryCache()

	sweeper := scheduler.NewCacheSweeperService(responseCache, cfg)
	if err := sweeper.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de varredura do cache")
	}

	server, err := api.New(
		cfg,
		metricService,
		insightService,
		exportService,
		dashboardService,
		authenticator,
		responseCache,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
