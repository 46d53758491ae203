package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"framelight/config"
	"framelight/cron"
	"framelight/database"
	catalogRepo "framelight/database/repository/catalog"
	leadRepo "framelight/database/repository/lead"
	messageRepo "framelight/database/repository/message"
	"framelight/handlers"
	"framelight/middleware"
	"framelight/routes"
	"framelight/services/chat"
	ai "framelight/services/intelligence"
	"framelight/services/notify"
	"framelight/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	db, err := database.Connect(context.Background(), config.AppConfig.MongoURL, config.AppConfig.DBName)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), db.Client())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	messages := messageRepo.NewMongoMessageRepo(db)
	leads := leadRepo.NewMongoLeadRepo(db)
	catalog := catalogRepo.NewMongoCatalogRepo(db)
	if err := catalog.Seed(context.Background()); err != nil {
		logger.Sugar().Warnf("main: failed to seed catalog: %v", err)
	}
	cachedCatalog := catalogRepo.NewCachedCatalogRepo(
		catalog,
		&catalogRepo.RedisCache{Client: utils.GetCacheClient()},
		5*time.Minute,
	)

	// Assistant responder.
	responder, err := ai.NewGeminiResponder(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize assistant responder: %v", err)
	}

	// Lead notification pipeline. Without a Resend key the chat still works,
	// leads just go unannounced.
	var notifier chat.LeadNotifier
	var queueClient *asynq.Client
	if config.AppConfig.ResendAPIKey != "" {
		mailer, err := notify.NewMailer(
			config.AppConfig.ResendAPIKey,
			config.AppConfig.StudioFromEmail,
			config.AppConfig.StudioName,
			config.AppConfig.StudioNotifyEmail,
		)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize mailer: %v", err)
		}
		queueClient = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		})
		notifier = notify.NewAsynqLeadNotifier(queueClient, logger)
		cron.InitLeadNotifyWorker(mailer)
	} else {
		logger.Sugar().Info("main: RESEND_API_KEY not set, lead notifications disabled")
	}

	// Services.
	chatService := &chat.DefaultChatService{
		Messages:  messages,
		Leads:     leads,
		Responder: responder,
		Extractor: chat.NewLeadExtractor(),
		Notifier:  notifier,
		Logger:    logger,
	}

	chatHandler := handlers.NewChatHandler(chatService)
	leadHandler := handlers.NewLeadHandler(leads)
	catalogHandler := handlers.NewCatalogHandler(cachedCatalog)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ChatHandler:        chatHandler.HandleChat,
		GetMessagesHandler: chatHandler.HandleGetMessages,

		CreateLeadHandler: leadHandler.HandleCreateLead,
		ListLeadsHandler:  leadHandler.HandleListLeads,

		GetPortfolioHandler: catalogHandler.HandleGetPortfolio,
		GetPackagesHandler:  catalogHandler.HandleGetPackages,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if queueClient != nil {
		if err := queueClient.Close(); err != nil {
			logger.Sugar().Warnf("main: failed to close queue client: %v", err)
		}
	}
	if err := db.Close(context.Background()); err != nil {
		logger.Sugar().Warnf("main: failed to close MongoDB connection: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
