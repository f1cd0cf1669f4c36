package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Sriram31Mech/EventHubPro-1/config"
	"github.com/Sriram31Mech/EventHubPro-1/database"
	_ "github.com/Sriram31Mech/EventHubPro-1/docs"
	"github.com/Sriram31Mech/EventHubPro-1/internal/auditlog"
	"github.com/Sriram31Mech/EventHubPro-1/internal/auth"
	"github.com/Sriram31Mech/EventHubPro-1/internal/event"
	"github.com/Sriram31Mech/EventHubPro-1/internal/notification"
	"github.com/Sriram31Mech/EventHubPro-1/middleware"
	"github.com/Sriram31Mech/EventHubPro-1/routes"
	"github.com/Sriram31Mech/EventHubPro-1/utils"
)

// @title EventHub Pro API
// @version 1.0
// @description Event listing platform with admin-managed catalog, search and AI description assist.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	db := database.Connect(cfg)

	if err := db.AutoMigrate(
		&auth.User{},
		&event.Event{},
		&auditlog.AuditLog{},
		&notification.Notification{},
	); err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ Database migrated")

	utils.InitRedis(cfg)
	utils.InitKafka(cfg)
	defer utils.CloseKafka()

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middlewareCORS())
	r.Use(middleware.AuditMiddleware())

	r.Static("/uploads", cfg.UploadDir)

	notifService, err := routes.Setup(r, db, cfg)
	if err != nil {
		log.Fatalf("❌ route setup failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	notification.StartKafkaConsumer(ctx, cfg, notifService)

	log.Printf("🚀 Server listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ server stopped: %v", err)
	}
}

func middlewareCORS() gin.HandlerFunc {
	c := cors.DefaultConfig()
	c.AllowAllOrigins = true
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	return cors.New(c)
}
