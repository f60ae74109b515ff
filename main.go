// File: tradenet/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tradenet/config"
	"tradenet/cron"
	"tradenet/database"
	orgRepoPkg "tradenet/database/repository/org"
	tradeRepoPkg "tradenet/database/repository/trade"
	vendorRepoPkg "tradenet/database/repository/vendor"
	"tradenet/handlers"
	"tradenet/middleware"
	"tradenet/routes"
	"tradenet/services/identity"
	"tradenet/services/notification"
	"tradenet/services/trade"
	"tradenet/services/vendor"
	"tradenet/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(context.Background(), config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Disconnect(mongoClient); err != nil {
			logger.Sugar().Warnf("main: failed to disconnect from MongoDB: %v", err)
		}
	}()

	utils.InitAuthCache()
	utils.InitOTPCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	orgRepo := orgRepoPkg.NewMongoOrgRepo(mongoClient, config.AppConfig.DatabaseName)
	tradeRepo := tradeRepoPkg.NewMongoTradeRepo(mongoClient, config.AppConfig.DatabaseName)
	vendorRepo := vendorRepoPkg.NewMongoVendorRepo(mongoClient, config.AppConfig.DatabaseName)

	// services.
	identityService := &identity.DefaultIdentityService{
		Repo:      orgRepo,
		Auth:      utils.AuthClient,
		Directory: identity.StaticGSTDirectory{},
		OTP:       identity.NewOTPStore(utils.GetOTPCacheClient(), time.Duration(config.AppConfig.OTPTTLMin)*time.Minute),
		Gateway:   identity.LogMessageGateway{},
	}

	dispatcher := notification.NewAsynqDispatcher(config.AppConfig)
	defer func() {
		if err := dispatcher.Close(); err != nil {
			logger.Sugar().Warnf("main: failed to close notify dispatcher: %v", err)
		}
	}()

	tradeService := &trade.DefaultTradeService{
		Repo:     tradeRepo,
		OrgRepo:  orgRepo,
		Notifier: dispatcher,
	}

	vendorService := &vendor.DefaultVendorService{
		Repo:  vendorRepo,
		Trade: tradeRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Orgs:          orgRepo,
		Push:          utils.FCMClient,
		HTTPClient:    &http.Client{Timeout: time.Duration(config.AppConfig.WebhookTimeoutSec) * time.Second},
		SigningSecret: []byte(config.AppConfig.WebhookSigningSecret),
	}
	cron.InitNotifyWorker(notificationService)

	authHandler := handlers.NewAuthHandler(identityService)
	tradeHandler := handlers.NewTradeHandler(tradeService)
	vendorHandler := handlers.NewVendorHandler(vendorService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Verifier:  utils.AuthClient,
		AuthCache: utils.GetAuthCacheClient(),

		// Identity endpoints.
		LoginHandler:         authHandler.LoginHandler,
		RegisterHandler:      authHandler.RegisterHandler,
		UpdateProfileHandler: authHandler.UpdateProfileHandler,

		// Trade endpoints.
		InvoiceRequestsHandler: tradeHandler.InvoiceRequestsHandler,
		LedgerHandler:          tradeHandler.LedgerHandler,
		NetworkHandler:         tradeHandler.NetworkHandler,

		// Vendor and inventory endpoints.
		VendorsHandler: vendorHandler.VendorsHandler,
		ItemsHandler:   vendorHandler.ItemsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(map[string]*redis.Client{
		"auth": utils.GetAuthCacheClient(),
		"otp":  utils.GetOTPCacheClient(),
	}, mongoClient)

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

	logger.Sugar().Info("main: server stopped gracefully")
}
