package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/teledash/analytics-api/infrastructure/database/postgres"
	"github.com/teledash/analytics-api/infrastructure/repository"
	"github.com/teledash/analytics-api/internal/api"
	"github.com/teledash/analytics-api/internal/config"
	"github.com/teledash/analytics-api/internal/scheduler"
	"github.com/teledash/analytics-api/internal/usecases/reporting"
	"github.com/teledash/analytics-api/internal/usecases/scoring"
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
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	orgRepo := repository.NewOrganizationRepository(pgConn)
	customerRepo := repository.NewCustomerRepository(pgConn)
	eventRepo := repository.NewEventRepository(pgConn)
	usageRepo := repository.NewUsageStatisticRepository(pgConn)
	agentPerfRepo := repository.NewAgentPerformanceRepository(pgConn)

	scorer, err := scoring.NewScorer(cfg.ChurnScoring)
	if err != nil {
		logrus.Fatal(err)
	}

	churnService := scoring.NewService(scorer, customerRepo, eventRepo, cfg)
	reportingService := reporting.NewService(orgRepo, usageRepo, agentPerfRepo)

	usageStatsSyncService := scheduler.NewUsageStatsSyncService(
		orgRepo,
		customerRepo,
		eventRepo,
		usageRepo,
		cfg,
	)

	agentPerformanceSyncService := scheduler.NewAgentPerformanceSyncService(
		orgRepo,
		eventRepo,
		agentPerfRepo,
		cfg,
	)

	churnSweepService := scheduler.NewChurnSweepService(
		orgRepo,
		customerRepo,
		churnService,
		cfg,
	)

	if err := usageStatsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de estatísticas de uso")
	} else {
		logrus.Info("Agendador de estatísticas de uso iniciado com sucesso")
	}

	if err := agentPerformanceSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de desempenho de agentes")
	} else {
		logrus.Info("Agendador de desempenho de agentes iniciado com sucesso")
	}

	if err := churnSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a varredura de churn")
	} else {
		logrus.Info("Varredura de churn iniciada com sucesso")
	}

	server, err := api.New(
		cfg,
		reportingService,
		churnService,
		usageStatsSyncService,
		agentPerformanceSyncService,
		churnSweepService,
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
