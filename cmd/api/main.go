package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pizzaria-storefront/internal/config"
	"pizzaria-storefront/internal/db"
	"pizzaria-storefront/internal/httpserver"
	cartitemrepo "pizzaria-storefront/internal/repository/cartitem"
	customerrepo "pizzaria-storefront/internal/repository/customer"
	favoriterepo "pizzaria-storefront/internal/repository/favorite"
	pizzarepo "pizzaria-storefront/internal/repository/pizza"
	accountsvc "pizzaria-storefront/internal/service/account"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	accountService := accountsvc.New(customerRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Pizzas:    pizzarepo.NewPostgres(dbpool, logger),
		CartItems: cartitemrepo.NewPostgres(dbpool, logger),
		Favorites: favoriterepo.NewPostgres(dbpool, logger),
		Accounts:  accountService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
