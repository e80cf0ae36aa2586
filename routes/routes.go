package routes

import (
	"net/http"
	"time"

	userRepo "eventvibe/database/repository/user"
	"eventvibe/handlers"
	"eventvibe/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle gathers the wired handlers for route registration.
type HandlerBundle struct {
	Onboarding *handlers.OnboardingHandler
	Account    *handlers.AccountHandler
	Events     *handlers.EventsHandler
	Buddies    *handlers.BuddiesHandler
	Storage    *handlers.StorageHandler
	UserRepo   userRepo.UserRepository
}

// RegisterOnboardingRoutes registers the registration wizard endpoints.
func RegisterOnboardingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/onboarding")
	{
		api.POST("/session", hb.Onboarding.StartHandler)
		api.POST("/session/:sessionID/step", hb.Onboarding.SubmitStepHandler)
		api.POST("/session/:sessionID/back", hb.Onboarding.BackHandler)
		api.DELETE("/session/:sessionID", hb.Onboarding.AbandonHandler)
		api.POST("/photo", hb.Storage.UploadProfilePictureHandler)
	}
}

// RegisterAccountRoutes registers sign-in and profile endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/login", hb.Account.SignInHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.Account.GetProfileHandler)
	}
}

// RegisterDiscoveryRoutes registers event discovery, joining and buddy matching.
func RegisterDiscoveryRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/events")
	{
		api.GET("", hb.Events.SearchHandler)
		api.GET("/:id", hb.Events.GetHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		protected.POST("/:id/join", hb.Events.JoinHandler)
	}

	buddies := r.Group("/api/buddies")
	{
		buddies.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		buddies.POST("/match", hb.Buddies.MatchHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm EventVibe"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterOnboardingRoutes(r, hb)
	RegisterAccountRoutes(r, hb)
	RegisterDiscoveryRoutes(r, hb)
	RegisterHealthRoute(r)
}
