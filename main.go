package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventvibe/config"
	"eventvibe/database"
	eventRepoPkg "eventvibe/database/repository/event"
	travelerRepoPkg "eventvibe/database/repository/traveler"
	userRepoPkg "eventvibe/database/repository/user"
	"eventvibe/handlers"
	"eventvibe/middleware"
	"eventvibe/routes"
	"eventvibe/services/account"
	"eventvibe/services/discovery"
	"eventvibe/services/geocode"
	"eventvibe/services/onboarding"
	"eventvibe/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	cld, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	eventRepo := eventRepoPkg.NewMongoEventRepo()
	travelerRepo := travelerRepoPkg.NewMongoTravelerRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	accountService := &account.DefaultAccountService{Repo: userRepo}

	onboardingService := &onboarding.DefaultOnboardingService{
		Sessions: onboarding.NewRedisSessionStore(),
		OTP:      onboarding.RedisOTPService{},
		Geo:      geocode.NewGoogleGeocoder(),
		Accounts: accountService,
	}

	discoveryService := &discovery.DefaultDiscoveryService{
		Events:    eventRepo,
		Travelers: travelerRepo,
		Cache:     utils.GetCacheClient(),
	}

	hb := &routes.HandlerBundle{
		Onboarding: handlers.NewOnboardingHandler(onboardingService),
		Account:    handlers.NewAccountHandler(accountService),
		Events:     handlers.NewEventsHandler(discoveryService),
		Buddies:    handlers.NewBuddiesHandler(discoveryService, accountService),
		Storage:    handlers.NewStorageHandler(cld),
		UserRepo:   userRepo,
	}
	routes.RegisterRoutes(router, hb)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("EventVibe listening on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	logger.Info("Server exited")
}
