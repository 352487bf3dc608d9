package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sir_venger/textsplit/internal/app/resthttp"
	"github.com/sir_venger/textsplit/internal/config"
	meta "github.com/sir_venger/textsplit/internal/repo"
)

// main поднимает REST-сервис разбиения файлов и корректно завершает его по сигналу.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	handler, srv, err := resthttp.NewServer(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Разбиения живут в памяти ограниченное время, GC вычищает просроченные.
	stopGC := meta.StartGC(srv.Store, cfg.SplitTTL, cfg.GCInterval)
	defer stopGC()

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("REST shutdown error: %v", err)
		}
	}()

	log.Printf("REST listening on %s (unit=%s, max upload=%d, ttl=%s, gc every=%s)",
		cfg.ListenAddr, cfg.Unit, cfg.MaxUploadBytes, cfg.SplitTTL, cfg.GCInterval)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("REST final shutdown error: %v", err)
	}
}
