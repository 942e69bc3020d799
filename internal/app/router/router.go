package router

import (
	"github.com/cesarbruschetta/api-fintech/configs"
	"github.com/cesarbruschetta/api-fintech/internal/app/handlers"
	"github.com/cesarbruschetta/api-fintech/internal/app/middleware"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/kafka/producer"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/notification"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/pubsub"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/redis"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/services"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/store"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/utils/worker"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
)

func SetupRouter(workerPool *worker.WorkerPool, redisClient *redis.RedisClient, pubsubPublisher pubsub.PubSubPublisherInterface, kafkaProducer *producer.Producer) *gin.Engine {

	r := gin.Default()
	meter := otel.Meter(configs.SERVICE_NAME)
	r.Use(otelgin.Middleware(configs.SERVICE_NAME))
	r.Use(middleware.NewMetricMiddleware(meter))
	r.Use(middleware.AttachRequestDetails())

	clientRepo := store.NewClientRepository()
	loanRepo := store.NewLoanRepository()
	paymentRepo := store.NewPaymentRepository()
	sequenceRepo := store.NewSequenceRepository()

	loanLocker := redis.NewLoanLocker(redisClient)
	notificationService := notification.NewNotificationService(pubsubPublisher)

	validationService := services.NewValidationService(loanRepo, paymentRepo)
	clientService := services.NewClientService(clientRepo, validationService)
	loanService := services.NewLoanService(workerPool, loanRepo, clientRepo, sequenceRepo, kafkaProducer, notificationService, validationService)
	paymentService := services.NewPaymentService(workerPool, loanRepo, paymentRepo, loanLocker, kafkaProducer, notificationService)
	balanceService := services.NewBalanceService(loanRepo, paymentRepo)

	clientHandler := handlers.NewClientHandler(clientService)
	loanHandler := handlers.NewLoanHandler(loanService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	balanceHandler := handlers.NewBalanceHandler(balanceService)

	r.POST("/clients", clientHandler.CreateClient)
	r.GET("/clients/:id", clientHandler.GetClient)
	r.POST("/loans", loanHandler.CreateLoan)
	r.POST("/loans/:id/payments", paymentHandler.CreatePayment)
	r.GET("/loans/:id/balance", balanceHandler.GetBalance)

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"message": "Health Check"})
	})

	return r
}
