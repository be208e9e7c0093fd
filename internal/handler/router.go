package handler

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"paralympics-api-go/internal/auth"
	"paralympics-api-go/internal/middleware"
	"paralympics-api-go/internal/store"
)

// NewRouter assembles the full routing table. Tests drive the same router
// the server runs.
func NewRouter(st *store.Store, authService *auth.AuthService, jwtSecret string) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           24 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	regionHandler := NewRegionHandler(st)
	eventHandler := NewEventHandler(st)
	authHandler := NewAuthHandler(authService)

	router.GET("/regions", regionHandler.GetRegions)
	router.GET("/regions/:code", regionHandler.GetRegion)
	router.POST("/regions", regionHandler.AddRegion)
	router.PATCH("/regions/:code", regionHandler.UpdateRegion)
	router.DELETE("/regions/:code", regionHandler.DeleteRegion)

	router.GET("/events", eventHandler.GetEvents)
	router.GET("/events/:id", eventHandler.GetEvent)
	router.POST("/events", eventHandler.AddEvent)
	router.PATCH("/events/:id", eventHandler.UpdateEvent)
	router.DELETE("/events/:id", eventHandler.DeleteEvent)

	authGroup := router.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	protected := authGroup.Group("")
	protected.Use(middleware.JWTAuthMiddleware(jwtSecret))
	protected.GET("/profile", authHandler.GetUserProfile)

	return router
}
