package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freelancehub/marketplace-api/internal/api/handler"
	"github.com/freelancehub/marketplace-api/internal/api/middleware"
	"github.com/freelancehub/marketplace-api/internal/chat"
	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/service"
	"github.com/freelancehub/marketplace-api/internal/infrastructure/config"
	mongodb "github.com/freelancehub/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/freelancehub/marketplace-api/internal/infrastructure/db/redis"
	"github.com/freelancehub/marketplace-api/internal/infrastructure/queue"
	"github.com/freelancehub/marketplace-api/internal/infrastructure/scam"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the chat dispatcher, which the caller starts.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	appRepo := mongodb.NewApplicationRepository(db)
	gigRepo := mongodb.NewGigRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	convRepo := mongodb.NewConversationRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	hasher := service.NewPasswordHasher(0)
	authService := service.NewAuthService(userRepo, tokens, hasher, log)
	userService := service.NewUserService(userRepo, log)
	jobService := service.NewJobService(jobRepo, log)
	appService := service.NewApplicationService(appRepo, jobRepo, userRepo, log)
	gigService := service.NewGigService(gigRepo, log)
	orderService := service.NewOrderService(orderRepo, gigRepo, log)
	paymentService := service.NewPaymentService(paymentRepo, jobRepo, userRepo, log)
	reviewService := service.NewReviewService(reviewRepo, jobRepo, log)
	convService := service.NewConversationService(convRepo, messageRepo, log)
	messageService := service.NewMessageService(messageRepo, log)
	notificationService := service.NewNotificationService(appRepo, log)
	scamService := service.NewScamService(
		scam.NewClassifierClient(cfg.Scam.ClassifierURL, cfg.Scam.Timeout),
		scam.NewIntentClient(cfg.Scam.IntentURL, cfg.Scam.Timeout),
		redisdb.NewScamVerdictCache(rdb),
		log,
	)

	// --- Chat fan-out ---
	dispatcher := queue.NewDispatcher(0, messageService, log)
	registry := chat.NewRegistry(log)
	chatHandler := chat.NewHandler(registry, dispatcher, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	jobHandler := handler.NewJobHandler(jobService)
	appHandler := handler.NewApplicationHandler(appService)
	gigHandler := handler.NewGigHandler(gigService)
	orderHandler := handler.NewOrderHandler(orderService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	convHandler := handler.NewConversationHandler(convService, messageService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	aiHandler := handler.NewAIHandler(scamService)

	authRequired := middleware.Auth(authService)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/protected", authHandler.Protected, authRequired)

	e.GET("/jobs", jobHandler.List)
	e.GET("/jobs/:id", jobHandler.Get)
	e.GET("/gigs", gigHandler.List)
	e.GET("/gigs/:id", gigHandler.Get)
	e.GET("/users/:id", userHandler.Get)
	e.GET("/users/:id/reviews", reviewHandler.ListForProfile)
	e.GET("/reviews/job/:job_id", reviewHandler.ListByJob)
	e.GET("/reviews/user/:user_id", reviewHandler.ListByUser)

	// --- Chat socket (no auth, by contract) ---
	e.GET("/ws/chat/:conversation_id", chatHandler.Serve)

	// --- Authenticated routes ---
	auth := e.Group("", authRequired)
	auth.GET("/users/me", userHandler.Me)
	auth.PUT("/users/me", userHandler.UpdateMe)

	auth.POST("/jobs", jobHandler.Create, middleware.RBAC(domain.RoleClient, domain.RoleAdmin))

	auth.POST("/applications", appHandler.Apply)
	auth.GET("/applications/job/:job_id", appHandler.ListForJob)
	auth.GET("/applications/my-applications", appHandler.ListMine)
	auth.PUT("/applications/:id/status", appHandler.Decide)

	auth.POST("/gigs", gigHandler.Create)
	auth.PUT("/gigs/:id", gigHandler.Update)
	auth.DELETE("/gigs/:id", gigHandler.Delete)

	auth.POST("/orders", orderHandler.Place)
	auth.GET("/orders/my", orderHandler.ListMine)

	auth.POST("/payments/initiate", paymentHandler.Initiate)
	auth.POST("/payments/verify/:id", paymentHandler.Verify)

	auth.POST("/reviews", reviewHandler.Create)

	auth.GET("/conversations", convHandler.List)
	auth.POST("/conversations", convHandler.Create)
	auth.GET("/conversations/:id/messages", convHandler.Messages)
	auth.POST("/messages", convHandler.SendMessage)
	auth.GET("/messages/:id", convHandler.GetMessage)

	auth.GET("/notifications/count/applications", notificationHandler.PendingApplications)
	auth.GET("/notifications/count/responses", notificationHandler.UnseenResponses)

	auth.POST("/ai/ml_check", aiHandler.MLCheck)
	auth.POST("/ai/rasa_check", aiHandler.RasaCheck)

	// --- Health and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, dispatcher
}
