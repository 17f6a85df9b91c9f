package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/AdarshJain-dev/Three-Tier-Application-Deployment-CI/internal/config"
	dbpkg "github.com/AdarshJain-dev/Three-Tier-Application-Deployment-CI/internal/db"
	httpx "github.com/AdarshJain-dev/Three-Tier-Application-Deployment-CI/internal/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := dbpkg.Connect(cfg, dbpkg.DefaultMaxAttempts, dbpkg.DefaultRetryDelay)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}
	defer store.Close()

	if err := store.EnsureTables(ctx); err != nil {
		log.Fatalf("schema error: %v", err)
	}

	srv := httpx.NewServer(store)
	httpSrv := &http.Server{Addr: ":" + cfg.AppPort, Handler: srv.R}

	go func() {
		log.Printf("listening on :%s", cfg.AppPort)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
