package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/pitchview/config"
	"github.com/lixenwraith/pitchview/match"
	"github.com/lixenwraith/pitchview/server"
)

var (
	configFlag = flag.String("config", "", "Path to config file (default: ./config.yaml if present)")
	dataFlag   = flag.String("data", "", "Telemetry file to replay (overrides config)")
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	dataFile := cfg.DataFile
	if *dataFlag != "" {
		dataFile = *dataFlag
	}

	store, err := match.LoadFile(dataFile)
	if err != nil {
		// Headless mode has no no-data screen worth serving; reject outright
		log.Fatalf("Error: failed to load %s: %v", dataFile, err)
	}
	log.Printf("loaded %d frames from %s", store.FrameCount(), dataFile)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := server.NewHub()
	go hub.Run(ctx)

	session := server.NewSession(store, cfg.Playback, hub)
	go session.Run(ctx)

	handler := server.NewHandler(hub, session, ctx)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: handler.Router(cfg.AllowedOrigins),
	}

	go func() {
		log.Printf("broadcast server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error: server failed: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
}
