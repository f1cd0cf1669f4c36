package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/Sriram31Mech/EventHubPro-1/config"
	"github.com/Sriram31Mech/EventHubPro-1/internal/ai"
	"github.com/Sriram31Mech/EventHubPro-1/internal/auditlog"
	"github.com/Sriram31Mech/EventHubPro-1/internal/auth"
	"github.com/Sriram31Mech/EventHubPro-1/internal/event"
	"github.com/Sriram31Mech/EventHubPro-1/internal/notification"
	"github.com/Sriram31Mech/EventHubPro-1/internal/reports"
	"github.com/Sriram31Mech/EventHubPro-1/middleware"
)

// ===========================
// 🎯 Route Setup
// ===========================

// Setup wires repositories, services and handlers, then registers every
// route group on the router.
func Setup(r *gin.Engine, db *gorm.DB, cfg *config.Config) (notification.Service, error) {
	// Repositories
	authRepo := auth.NewRepository(db)
	eventRepo := event.NewRepository(db)
	auditRepo := auditlog.NewRepository(db)
	notifRepo := notification.NewRepository(db)

	// Services
	images, err := event.NewDiskImageStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}
	authService := auth.NewService(authRepo, cfg)
	auditService := auditlog.NewService(auditRepo)
	notifService := notification.NewService(notifRepo)
	eventService := event.NewService(eventRepo, images, auditService, notifService)
	aiService := ai.NewService(ai.NewClient(cfg))

	// Handlers
	authHandler := auth.NewHandler(authService, auditService)
	eventHandler := event.NewHandler(eventService)
	aiHandler := ai.NewHandler(aiService, auditService)
	auditHandler := auditlog.NewHandler(auditService)
	notifHandler := notification.NewHandler(notifService)
	reportHandler := reports.NewHandler(eventService)

	authRequired := middleware.AuthMiddleware(cfg)
	adminOnly := middleware.RequireRoles(middleware.RoleAdmin)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		// 🎯 Auth
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", authRequired, authHandler.Me)
		}

		// 🎯 Events (public reads, admin writes)
		events := api.Group("/events")
		{
			events.GET("", eventHandler.List)
			events.GET("/my", authRequired, adminOnly, eventHandler.MyEvents)
			events.GET("/my/export", authRequired, adminOnly, reportHandler.Export)
			events.GET("/:id", eventHandler.Get)

			events.POST("", authRequired, adminOnly, eventHandler.Create)
			events.PUT("/:id", authRequired, adminOnly, eventHandler.Update)
			events.DELETE("/:id", authRequired, adminOnly, eventHandler.Delete)
		}

		// 🎯 AI description assist (rate limited per IP)
		aiGroup := api.Group("/ai", middleware.RateLimiter(cfg.AIRateLimit, cfg.AIRatePeriod))
		{
			aiGroup.POST("/generate-description", authRequired, adminOnly, aiHandler.Generate)
		}

		// 🎯 Notifications
		notifications := api.Group("/notifications", authRequired)
		{
			notifications.GET("", notifHandler.List)
			notifications.PATCH("/:id/read", notifHandler.MarkRead)
		}

		// 🎯 Audit logs
		api.GET("/auditlogs", authRequired, adminOnly, auditHandler.List)
	}

	return notifService, nil
}
