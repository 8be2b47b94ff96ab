package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/rupeemate/backend/internal/config"
	"github.com/rupeemate/backend/internal/handlers"
	"github.com/rupeemate/backend/internal/llm"
	"github.com/rupeemate/backend/internal/logger"
	"github.com/rupeemate/backend/internal/service"
	"github.com/rupeemate/backend/internal/store"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	if err := logger.Init(cfg.Env == "local", logger.InfoLevel); err != nil {
		panic(fmt.Sprintf("init logger: %v", err))
	}
	defer logger.Sync()
	log := logger.Get()

	ctx := context.Background()

	var st store.Store
	if cfg.UseMemoryStore {
		log.Info("using in-memory store for local development")
		st = store.NewMemoryStore()
	} else {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatal("open database", zap.Error(err))
		}
		defer db.Close()

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("ping database", zap.Error(err))
		}

		pg := store.NewPostgresStore(db)
		if err := pg.Migrate(ctx); err != nil {
			log.Fatal("run migrations", zap.Error(err))
		}
		st = pg
	}

	assistant := llm.NewClient(cfg.AssistantURL)
	svc := service.NewFinanceService(st, assistant, cfg.JWTSecret)

	router := handlers.NewRouter(svc, cfg.JWTSecret)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"User-Agent",
		},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: h2c.NewHandler(c.Handler(router), &http2.Server{}),
	}

	log.Info("starting server",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.Env),
		zap.String("assistant_url", cfg.AssistantURL))
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
