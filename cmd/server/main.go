// Command server runs the resort back-office HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/config"
	"github.com/Shivanand-hulikatti/resort-backoffice/internal/conflict"
	"github.com/Shivanand-hulikatti/resort-backoffice/internal/database"
	"github.com/Shivanand-hulikatti/resort-backoffice/internal/handler"
	"github.com/Shivanand-hulikatti/resort-backoffice/internal/logger"
	"github.com/Shivanand-hulikatti/resort-backoffice/internal/receipts"
	"github.com/Shivanand-hulikatti/resort-backoffice/internal/repository"
	"github.com/Shivanand-hulikatti/resort-backoffice/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── 1. Load configuration ────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{Service: "resort-api"}).Fatal("invalid configuration", "error", err)
	}
	log := logger.New(logger.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "resort-api",
	})

	// ── 2. Connect to PostgreSQL ──────────────────────────────────────────
	pool, err := database.NewPool(ctx, cfg.Database, log.Logger)
	if err != nil {
		log.Fatal("database unavailable", "error", err)
	}
	defer pool.Close()
	log.Info("connected to postgres", "host", cfg.Database.Host, "database", cfg.Database.Name)

	// ── 3. Wire up layers ────────────────────────────────────────────────
	roomRepo := repository.NewRoomRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	lookupRepo := repository.NewLookupRepository(pool)
	validate := service.NewValidator()

	roomSvc := service.NewRoomService(roomRepo, validate)
	bookingSvc := service.NewBookingService(bookingRepo, roomRepo, conflict.NewDetector(bookingRepo, roomRepo), validate).
		WithPhoneRegion(cfg.Guests.PhoneRegion)
	foodSvc := service.NewFoodOrderService(repository.NewFoodOrderRepository(pool), roomRepo, lookupRepo, bookingRepo, validate)
	amenitySvc := service.NewAmenityService(repository.NewAmenityRepository(pool), roomRepo, lookupRepo, validate)
	receiptStore := receipts.NewStore(cfg.Uploads.ExpenseDir)
	expenseSvc := service.NewExpenseService(repository.NewExpenseRepository(pool), lookupRepo, receiptStore, validate)

	// ── 4. Build the router ───────────────────────────────────────────────
	router := handler.NewRouter(handler.Handlers{
		Rooms:      handler.NewRoomHandler(roomSvc, log.Logger),
		Bookings:   handler.NewBookingHandler(bookingSvc, log.Logger),
		FoodOrders: handler.NewFoodOrderHandler(foodSvc, log.Logger),
		Amenities:  handler.NewAmenityHandler(amenitySvc, log.Logger),
		Expenses:   handler.NewExpenseHandler(expenseSvc, receiptStore, cfg.Uploads.MaxBytes, log.Logger),
	}, log.Logger)

	// ── 5. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		log.Fatal("server error", "error", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		return
	}
	log.Info("server stopped")
}
