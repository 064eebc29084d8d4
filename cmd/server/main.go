package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/ngxtri/wordwheel-server/internal/app"
	"github.com/ngxtri/wordwheel-server/internal/config"
	"github.com/ngxtri/wordwheel-server/internal/log"
)

func usage() {
	fmt.Printf("Usage: %s [flags] <Server Port>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	var configPath, logLevel string
	flag.StringVar(&configPath, "config", "", "path to config.yaml")
	flag.StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		return
	}
	port := flag.Arg(0)
	if _, err := strconv.Atoi(port); err != nil {
		usage()
		return
	}

	logger := log.New("info")
	cfg, configFile, err := config.Load(logger, configPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", configFile).Msg("failed to load config")
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	logger = log.New(cfg.LogLevel)

	// The positional port wins over the configured game address.
	if host, _, splitErr := net.SplitHostPort(cfg.Addr); splitErr == nil {
		cfg.Addr = net.JoinHostPort(host, port)
	} else {
		cfg.Addr = ":" + port
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build application")
	}

	logger.Info().Str("addr", cfg.Addr).Str("config", configFile).Msg("starting wordwheel server")
	if err := application.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server exited with error")
	}
	logger.Info().Msg("server stopped")
}
