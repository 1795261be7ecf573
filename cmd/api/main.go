package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mfcarv/banco-api/internal/config"
	"github.com/mfcarv/banco-api/internal/handler"
	"github.com/mfcarv/banco-api/internal/logging"
	"github.com/mfcarv/banco-api/internal/middleware"
	"github.com/mfcarv/banco-api/internal/registry"
	"github.com/mfcarv/banco-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init("banco-api", cfg.LogLevel, cfg.AppEnv)

	reg := registry.New(cfg.WithdrawalAmountLimit, cfg.WithdrawalCountLimit)
	bank := service.NewBankService(reg)

	clients := handler.NewClientHandler(bank)
	accounts := handler.NewAccountHandler(bank)
	health := handler.NewHealthHandler()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", health.Liveness)

	mux.HandleFunc("POST /api/v1/clients", clients.Register)
	mux.HandleFunc("GET /api/v1/clients", clients.List)
	mux.HandleFunc("POST /api/v1/clients/{taxID}/accounts", clients.OpenAccount)
	mux.HandleFunc("GET /api/v1/clients/{taxID}/accounts", clients.Accounts)

	mux.HandleFunc("GET /api/v1/accounts", accounts.List)
	mux.HandleFunc("POST /api/v1/accounts/{number}/deposits", accounts.Deposit)
	mux.HandleFunc("POST /api/v1/accounts/{number}/withdrawals", accounts.Withdraw)
	mux.HandleFunc("GET /api/v1/accounts/{number}/statement", accounts.Statement)

	root := middleware.Tracing(middleware.Logging(middleware.Recovery(mux)))

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           root,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
