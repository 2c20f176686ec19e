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

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"gasline/internal/analytics"
	"gasline/internal/auth"
	balanceStore "gasline/internal/balance/store"
	"gasline/internal/config"
	"gasline/internal/customer"
	customerStore "gasline/internal/customer/store"
	"gasline/internal/database"
	"gasline/internal/export"
	gaslineHttp "gasline/internal/http"
	customerHandler "gasline/internal/http/customer"
	exportHandler "gasline/internal/http/export"
	importHandler "gasline/internal/http/importcsv"
	paymentHandler "gasline/internal/http/payment"
	txHandler "gasline/internal/http/transaction"
	vehicleHandler "gasline/internal/http/vehicle"
	"gasline/internal/importer"
	"gasline/internal/payment"
	paymentStore "gasline/internal/payment/store"
	"gasline/internal/transaction"
	txStore "gasline/internal/transaction/store"
	"gasline/internal/vehicle"
	vehicleStore "gasline/internal/vehicle/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	events := analytics.NewSlogLogger(slog.Default())
	balances := balanceStore.New(db)

	var (
		customerService    = customer.NewService(customerStore.New(db), events)
		vehicleService     = vehicle.NewService(vehicleStore.New(db))
		transactionService = transaction.NewService(txStore.New(db), balances, events)
		paymentService     = payment.NewService(paymentStore.New(db), balances, events)
		importService      = importer.NewService()
		exportService      = export.NewService(transactionService, paymentService)
	)

	var (
		customerH = customerHandler.NewHandler(customerService, transactionService)
		vehicleH  = vehicleHandler.NewHandler(vehicleService)
		txH       = txHandler.NewHandler(transactionService, customerService, vehicleService)
		paymentH  = paymentHandler.NewHandler(paymentService, customerService, transactionService)
		importH   = importHandler.NewHandler(importService, customerService)
		exportH   = exportHandler.NewHandler(exportService)
	)

	identity := auth.NewMiddleware(cfg.Auth.Secret)

	router := gaslineHttp.New(identity, cfg.CORS.AllowedOrigins,
		customerH, vehicleH, txH, paymentH, importH, exportH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting server", "addr", server.Addr)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
