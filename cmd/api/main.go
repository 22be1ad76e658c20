package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"straysense/internal/adapters/storage/postgres"
	"straysense/internal/platform/config"
	"straysense/internal/platform/logger"
	"straysense/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// logger todavía no existe: salida cruda y chau
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Error("db open failed", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := postgres.Migrate(ctx, db); err != nil {
			cancel()
			log.Error("migrations failed", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		cancel()
	}

	r := router.NewRouter(router.Options{
		DB:            db,
		JWTSecret:     cfg.JWTSecret,
		AdminPassword: cfg.AdminPassword,
		SessionTTL:    cfg.SessionTTL,
		Logger:        log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": srv.Addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
