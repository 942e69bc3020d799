package main

import (
	"context"
	"log"
	"strconv"

	"github.com/cesarbruschetta/api-fintech/configs"
	"github.com/cesarbruschetta/api-fintech/internal/app/router"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/db"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/kafka/producer"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/logger"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/otel"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/pubsub"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/redis"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/report"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/store"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/utils/worker"
)

func main() {

	// Load Environment Variables
	err := configs.LoadEnv()
	if err != nil {
		logger.Debug("Error loading .env file: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// setup otel collector
	_, err = otel.Setup(ctx, configs.SERVICE_NAME, configs.OTEL_URL)
	if err != nil {
		logger.Error(ctx, "Error setting up OTLP: %v", err)
	}

	// DB Connection
	mdb, dbErr := db.NewMongoDB()
	if dbErr != nil {
		log.Fatalf("Error connecting to MongoDB: %v", dbErr)
	}
	db.MDB = mdb
	defer mdb.Close()

	kafkaProducer, err := producer.NewKafkaProducer(configs.KAFKA_TOPIC)
	if err != nil {
		logger.Error(ctx, "failed to create Kafka Producer error: %v", err)
	}
	logger.Info(ctx, "Kafka Producer Created")
	producer.KafkaProducer = kafkaProducer
	defer kafkaProducer.Close()

	// Initialize Pub/Sub Publisher. When it cannot be built the interface
	// stays nil and client notifications are skipped, never a typed-nil
	// pointer behind the interface.
	var pubsubPublisher pubsub.PubSubPublisherInterface
	if pub, pubErr := pubsub.NewPubSubPublisher(ctx, configs.PROJECT_ID); pubErr != nil {
		logger.Error(ctx, "Failed to create Pub/Sub Publisher, client notifications disabled: %v", pubErr)
	} else {
		pubsubPublisher = pub
		defer pub.Close()
	}

	numberOfWorkers, er := strconv.Atoi(configs.WORKER_POOL)
	if er != nil {
		logger.Error(ctx, "Invalid WORKER_POOL value: %v", er)
		numberOfWorkers = 5
	}

	// Connect to Redis
	redisClient, err := redis.ConnectToRedis(ctx, configs.GetRedisConfig(), nil)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	workerPool := worker.NewWorkerPool(numberOfWorkers)
	defer workerPool.Stop()

	// Periodic ledger report shipped over SFTP
	reportService := report.NewLedgerReportService(store.NewPaymentRepository(), store.NewLoanRepository(), report.NewSftpService())
	go reportService.RunPeriodicReports(ctx)

	r := router.SetupRouter(workerPool, redisClient, pubsubPublisher, kafkaProducer)

	port := configs.SERVER_PORT

	if err := r.Run(":" + port); err != nil {
		logger.Error(ctx, "Failed to run server: %v", err)
	}
}
