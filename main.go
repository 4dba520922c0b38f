package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-order-app/config"
	"github.com/yeremiapane/food-order-app/database"
	"github.com/yeremiapane/food-order-app/realtime"
	"github.com/yeremiapane/food-order-app/router"
	"github.com/yeremiapane/food-order-app/store"
	"github.com/yeremiapane/food-order-app/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	utils.InitLoggerWithLevel(cfg.LogLevel)

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect on first use; the handle is shared read-only afterwards.
	foodOrders := store.NewLazy(func() (store.Store, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return store.Open(ctx, cfg)
	})
	defer func() {
		if err := foodOrders.Close(); err != nil {
			utils.ErrorLogger.Printf("Error closing store: %v", err)
		}
	}()

	if cfg.SeedDemoData {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		n, err := database.SeedFoodOrders(ctx, foodOrders)
		cancel()
		if err != nil {
			utils.ErrorLogger.Fatalf("Failed to seed food orders: %v", err)
		}
		utils.InfoLogger.Printf("Seeded %d food orders", n)
	}

	hub := realtime.NewHub(utils.InfoLogger)
	r := router.SetupRouter(cfg, foodOrders, hub, utils.InfoLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.InfoLogger.WithField("driver", cfg.StoreDriver).Printf("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.InfoLogger.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.ErrorLogger.Printf("Server forced to shutdown: %v", err)
	}
	utils.InfoLogger.Println("Server stopped.")
}
