package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/voltatec/field-asset-api/internal/config"
	dbpkg "github.com/voltatec/field-asset-api/internal/db"
	"github.com/voltatec/field-asset-api/internal/middleware"
	"github.com/voltatec/field-asset-api/internal/routes"
	"github.com/voltatec/field-asset-api/internal/session"
)

func main() {

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	defer func() {
		_ = logger.Sync()
	}()

	db := dbpkg.NewDB(cfg)

	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour

	var sessions session.Store
	if cfg.SessionRedisURL != "" {
		sessions, err = session.NewRedisStore(cfg.SessionRedisURL, sessionTTL)
		if err != nil {
			sugar.Fatalw("failed to connect session redis", "error", err)
		}
	} else {
		sessions = session.NewMemoryStore(sessionTTL)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggingMiddleware(sugar))
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, sessions, sessionTTL)

	sugar.Infow("Server running", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		sugar.Fatalw("failed to start server", "error", err)
	}
}
