package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/puffpay/puffpay-backend/internal/adapters/ledger/evmrpc"
	"github.com/puffpay/puffpay-backend/internal/adapters/memstore"
	"github.com/puffpay/puffpay-backend/internal/core/services"
	"github.com/puffpay/puffpay-backend/internal/handlers"
	"github.com/puffpay/puffpay-backend/internal/middleware"
	"github.com/puffpay/puffpay-backend/internal/platform/config"
	"github.com/puffpay/puffpay-backend/internal/utils"
)

// @title PuffPay Backend API
// @version 1.0
// @description Invoicing and token settlement backend for PuffPay.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect the token ledger client
	ledgerClient, err := evmrpc.Dial(ctx, cfg.ChainRPCURL, cfg.TokenAddress, cfg.AccountAddress)
	if err != nil {
		logger.Error("Failed to connect to token ledger", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer ledgerClient.Close()
	logger.Info("Token ledger client connected", slog.String("rpc_url", cfg.ChainRPCURL))

	// Confirm the token's precision against the chain, falling back to the
	// configured value when the node is unreachable at startup.
	decimals := cfg.TokenDecimals
	decCtx, decCancel := context.WithTimeout(ctx, 5*time.Second)
	if chainDecimals, err := ledgerClient.Decimals(decCtx); err != nil {
		logger.Warn("Could not read token decimals from ledger, using configured value",
			slog.String("error", err.Error()), slog.Int("decimals", int(decimals)))
	} else {
		decimals = chainDecimals
	}
	decCancel()

	// In-memory authoritative store and services
	store := memstore.NewStore()
	repos := memstore.NewRepositoryProvider(store)
	container := services.NewServiceContainer(repos, ledgerClient, services.ContainerOptions{
		AccountAddress: cfg.AccountAddress,
		TokenDecimals:  decimals,
		PollInterval:   cfg.BalancePollInterval,
	})

	// Start the balance poller
	container.Balance.Start(ctx)
	defer container.Balance.Stop()

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, analytics)
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(corsConfig),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("Server stopped")
}
