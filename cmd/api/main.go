package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/todoapp/todo-api-go/internal/config"
	"github.com/todoapp/todo-api-go/internal/handler"
	"github.com/todoapp/todo-api-go/internal/middleware"
	"github.com/todoapp/todo-api-go/internal/repository"
	"github.com/todoapp/todo-api-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	var router chi.Router

	db, err := repository.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed, API routes disabled", "error", err)

		router = chi.NewRouter()
		router.Use(middleware.Logger)
		router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ok"))
		})
	} else {
		defer db.Close()

		ctx := context.Background()

		userRepo := repository.NewUserRepository(db)
		todoRepo := repository.NewTodoRepository(db)
		if err := userRepo.Init(ctx); err != nil {
			slog.Error("init user repository", "error", err)
			os.Exit(1)
		}
		if err := todoRepo.Init(ctx); err != nil {
			slog.Error("init todo repository", "error", err)
			os.Exit(1)
		}

		authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry, cfg.BcryptCost)
		todoService := service.NewTodoService(todoRepo)

		authHandler := handler.NewAuthHandler(authService)
		todoHandler := handler.NewTodoHandler(todoService)

		router = handler.NewRouter(authHandler, todoHandler, cfg.JWTSecret)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "db", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
