// Command dtminfo-server serves movie header decoding over HTTP.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/ugparu/dtminfo/config"
	"github.com/ugparu/dtminfo/server"
	"github.com/ugparu/dtminfo/utils/logger"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	envFile := flag.String("env", ".env", "optional .env file")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		logger.Fatalf("main", "Loading config: %v", err)
	}
	if err = cfg.Validate(); err != nil {
		logger.Fatalf("main", "Invalid config: %v", err)
	}
	lvl, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatalf("main", "%v", err)
	}
	logger.Init(lvl, os.Stderr)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	srv := server.New(cfg.Server)
	go srv.Start()

	select {
	case <-sigChan:
		logger.Info("main", "Shutdown signal received")
		srv.Close()
		<-srv.Dead()
	case <-srv.Dead():
	}
	logger.Info("main", "Server shutdown complete")
}
