package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"dayplan/internal/config"
	"dayplan/internal/handler"
	"dayplan/internal/logger"
	"dayplan/internal/middleware"
	"dayplan/internal/service"
	"dayplan/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	middleware.SetJWTSecret(cfg.Server.JWTSecret)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	st := store.New(db)
	if err := st.AutoMigrate(); err != nil {
		slog.Error("schema bootstrap failed", "err", err)
		os.Exit(1)
	}

	authSvc := service.NewAuthService(st)
	logSvc := service.NewLogService(st)
	todoSvc := service.NewTodoService(st)
	eventSvc := service.NewEventService(st)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go service.NewReconciler(st, cfg.SweepInterval()).Run(ctx)

	r := gin.Default()
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	handler.RegisterRoutes(r,
		handler.NewAuthHandler(authSvc),
		handler.NewLogHandler(logSvc),
		handler.NewTodoHandler(todoSvc),
		handler.NewEventHandler(eventSvc),
	)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
