package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	strengthService "github.com/moura95/passmeter/internal/application/services/strength"
	strengthUC "github.com/moura95/passmeter/internal/application/usecases/strength"
	"github.com/moura95/passmeter/internal/domain/strength"
	"github.com/moura95/passmeter/internal/infra/config"
	"github.com/moura95/passmeter/internal/infra/database/postgres"
	"github.com/moura95/passmeter/internal/infra/http/gin"
	"github.com/moura95/passmeter/internal/infra/logger"
	"github.com/moura95/passmeter/internal/infra/messaging/queues"
	"github.com/moura95/passmeter/internal/infra/messaging/rabbitmq"
	"github.com/moura95/passmeter/internal/infra/metrics"
	"github.com/moura95/passmeter/internal/infra/repository/adapters"
	"github.com/moura95/passmeter/internal/interfaces/http/handlers"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	loadConfig, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.New(logger.DefaultConfig(loadConfig.LogLevel, loadConfig.LogFile))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	sugar := zapLogger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Evaluation store is optional
	var evaluationRepo strength.Repository
	if loadConfig.DBSource != "" {
		conn := setupPostgres(ctx, loadConfig, sugar)
		if conn != nil {
			defer conn.Close()
			evaluationRepo = adapters.NewRepositories(conn.DB()).Evaluation
		}
	} else {
		sugar.Info("DB_SOURCE not set, evaluations will not be recorded")
	}

	// Events only make sense when something can record them
	var publisher strength.Publisher
	var evaluationQueue *queues.EvaluationQueue
	if loadConfig.RabbitMQURL != "" && evaluationRepo != nil {
		rabbitConn := setupRabbitMQ(loadConfig, sugar)
		if rabbitConn != nil {
			defer rabbitConn.Close()
			evaluationQueue = queues.NewEvaluationQueue(rabbitConn, loadConfig.RabbitMQQueueEvaluations)
			publisher = evaluationQueue
		}
	}

	m := metrics.NewMetrics("passmeter")

	// Use cases
	evaluateUC := strengthUC.NewEvaluatePasswordUseCase(evaluationRepo, publisher, m, sugar).
		WithMaxPasswordLength(loadConfig.MaxPasswordLength)
	getStatsUC := strengthUC.NewGetStatsUseCase(evaluationRepo)

	var recordUC *strengthUC.RecordEvaluationUseCase
	if evaluationRepo != nil {
		recordUC = strengthUC.NewRecordEvaluationUseCase(evaluationRepo)
	}

	service := strengthService.NewStrengthService(evaluateUC, recordUC, getStatsUC)

	if evaluationQueue != nil {
		consumerHandler := handlers.NewEvaluationConsumerHandler(service, sugar)
		if err := evaluationQueue.StartConsuming(ctx, consumerHandler.HandleEvaluationMessage); err != nil {
			sugar.Warnf("Failed to start evaluation consumer (recording directly): %v", err)
			evaluateUC = strengthUC.NewEvaluatePasswordUseCase(evaluationRepo, nil, m, sugar).
				WithMaxPasswordLength(loadConfig.MaxPasswordLength)
			service = strengthService.NewStrengthService(evaluateUC, recordUC, getStatsUC)
		} else {
			sugar.Infow("Evaluation consumer started", "queue", loadConfig.RabbitMQQueueEvaluations)
		}
	}

	// Run HTTP server
	gin.RunGinServer(ctx, loadConfig, service, m, sugar)
}

func setupPostgres(ctx context.Context, cfg config.Config, logger *zap.SugaredLogger) *postgres.Connection {
	conn, err := postgres.ConnectPostgres(cfg.DBSource)
	if err != nil {
		logger.Warnf("Failed to connect to database (continuing without evaluation store): %v", err)
		return nil
	}

	if err := postgres.Migrate(ctx, conn.DB()); err != nil {
		logger.Warnf("Failed to migrate database (continuing without evaluation store): %v", err)
		conn.Close()
		return nil
	}

	logger.Info("Database connection established")
	return conn
}

func setupRabbitMQ(cfg config.Config, logger *zap.SugaredLogger) *rabbitmq.Connection {
	connectionConfig := rabbitmq.ConnectionConfig{
		URL:    cfg.RabbitMQURL,
		Queues: []string{cfg.RabbitMQQueueEvaluations},
		Logger: logger,
	}

	rabbitConn, err := rabbitmq.NewConnection(connectionConfig)
	if err != nil {
		logger.Warnf("Failed to setup RabbitMQ (continuing without messaging): %v", err)
		return nil
	}

	logger.Info("RabbitMQ connection configured successfully")
	return rabbitConn
}
