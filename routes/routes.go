package routes

import (
	"net/http"
	"time"

	"towline/handlers"
	"towline/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers collects the per-entity handlers the router wires up.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Clients     *handlers.ClientHandler
	Providers   *handlers.ProviderHandler
	Workers     *handlers.WorkerHandler
	BoatTows    *handlers.BoatTowHandler
	Assignments *handlers.AssignmentHandler
	Images      *handlers.ImageHandler
}

// RegisterAuthRoutes registers token exchange endpoints.
func RegisterAuthRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/auth")
	{
		api.POST("/token", h.Auth.TokenHandler)
		api.GET("/me", middleware.JWTAuthMiddleware(), h.Auth.MeHandler)
	}
}

// RegisterClientRoutes registers client endpoints.
func RegisterClientRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/clients")
	{
		api.POST("/register", h.Clients.RegisterClientHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", h.Clients.GetAllClientsHandler)
		api.GET("/:id", h.Clients.GetClientByIDHandler)
		api.PUT("/:id", h.Clients.UpdateClientHandler)
	}
}

// RegisterProviderRoutes registers provider endpoints plus the nested
// worker and boat tow resources.
func RegisterProviderRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/providers")
	{
		api.POST("/register", h.Providers.RegisterProviderHandler)

		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", h.Providers.GetAllProvidersHandler)
		api.GET("/:providerId", h.Providers.GetProviderByIDHandler)
		api.PUT("/:providerId", h.Providers.UpdateProviderHandler)

		workers := api.Group("/:providerId/workers")
		workers.GET("", h.Workers.GetAllWorkersHandler)
		workers.POST("", h.Workers.CreateWorkerHandler)
		workers.GET("/:id", h.Workers.GetWorkerByIDHandler)
		workers.PUT("/:id", h.Workers.UpdateWorkerHandler)
		workers.PATCH("/:id", h.Workers.PatchWorkerHandler)
		workers.PUT("/:id/location", h.Workers.PatchWorkerLocationHandler)
		workers.PUT("/:id/status", h.Workers.PatchWorkerStatusHandler)
		workers.PUT("/:id/device-token", h.Workers.PatchWorkerDeviceTokenHandler)

		boattows := api.Group("/:providerId/boattows")
		boattows.GET("", h.BoatTows.GetAllBoatTowsHandler)
		boattows.POST("", h.BoatTows.CreateBoatTowHandler)
		boattows.GET("/:id", h.BoatTows.GetBoatTowByIDHandler)
		boattows.PUT("/:id", h.BoatTows.UpdateBoatTowHandler)
	}
}

// RegisterAssignmentRoutes registers assignment endpoints.
func RegisterAssignmentRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/assignments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", h.Assignments.CreateAssignmentHandler)
		api.POST("/search", h.Assignments.SearchAssignmentsHandler)
		api.GET("/:id", h.Assignments.GetAssignmentByIDHandler)
		api.PUT("/:id", h.Assignments.UpdateAssignmentHandler)
		api.POST("/:id/images", h.Assignments.AppendAssignmentImageHandler)
		api.GET("/:id/images/:name", h.Assignments.DownloadAssignmentImageHandler)
	}
}

// RegisterImageRoutes registers image directory and blob endpoints.
func RegisterImageRoutes(r *gin.Engine, h *Handlers) {
	api := r.Group("/api/images")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/:store", h.Images.CreateBucketHandler)
		api.GET("/:store/:bucket", h.Images.GetBucketHandler)
		api.POST("/:store/:bucket", h.Images.UploadImageHandler)
		api.GET("/:store/:bucket/:name", h.Images.DownloadImageHandler)
		api.DELETE("/:store/:bucket/:name", h.Images.DeleteImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Towline"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, h)
	RegisterClientRoutes(r, h)
	RegisterProviderRoutes(r, h)
	RegisterAssignmentRoutes(r, h)
	RegisterImageRoutes(r, h)
}
