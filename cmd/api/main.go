package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafaelmaiia/mar-de-beleza-system/internal/config"
	dbpkg "github.com/rafaelmaiia/mar-de-beleza-system/internal/db"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/logger"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/middleware"
	"github.com/rafaelmaiia/mar-de-beleza-system/internal/routes"
)

func main() {

	cfg := config.Load()

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zlog.Sync()

	db := dbpkg.NewDB(cfg)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, zlog)

	zlog.Info("server running on " + cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
