// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-obvious/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/cloudzero/pacman/app/build"
	config "github.com/cloudzero/pacman/app/config/pacman"
	"github.com/cloudzero/pacman/app/domain/healthz"
	"github.com/cloudzero/pacman/app/domain/pacman"
	"github.com/cloudzero/pacman/app/handlers"
	"github.com/cloudzero/pacman/app/http/middleware"
	"github.com/cloudzero/pacman/app/logging"
	"github.com/cloudzero/pacman/app/storage/core"
	"github.com/cloudzero/pacman/app/storage/repo"
	"github.com/cloudzero/pacman/app/storage/sqlite"
	"github.com/cloudzero/pacman/app/utils/scout"
)

func main() {
	var configFile string
	flag.StringVar(&configFile, "config", configFile, "Path to the configuration file; the environment is used when empty")
	flag.Parse()

	settings, err := config.NewSettings(configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load settings")
	}

	ctx := context.Background()
	logger, err := logging.NewLogger(
		logging.WithLevel(settings.Logging.Level),
		logging.WithOmittedFields(settings.Logging.OmitFields...),
		logging.WithVersion(build.GetVersion()),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create the logger")
	}
	zerolog.DefaultContextLogger = logger
	ctx = logger.WithContext(ctx)

	// print settings on debug
	if logger.GetLevel() <= zerolog.DebugLevel {
		enc, err := settings.ToYAML() //nolint:govet // shadowed err is scoped to this block
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to encode the config")
		}
		fmt.Println(string(enc))
	}

	db, err := sqlite.Open(ctx, settings.Database.Path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", settings.Database.Path).Msg("failed to initialize database")
	}
	defer func() {
		if innerErr := core.Close(db); innerErr != nil {
			logger.Err(innerErr).Msg("failed to close database")
		}
		if r := recover(); r != nil {
			logger.Panic().Interface("panic", r).Msg("application panicked, exiting")
		}
	}()

	healthz.Register("database", func() error {
		return core.Ping(ctx, db)
	})

	// Handle shutdown events gracefully
	go func() {
		HandleShutdownEvents(ctx, db)
		os.Exit(0)
	}()

	locator := pacman.NewLocator(
		scout.NewScout(settings.Location.ScoutOptions()...),
		pacman.WithStaticIdentity(settings.Location.Cloud, settings.Location.Zone),
	)
	highScores := pacman.NewHighScores(repo.NewHighScoreRepo(db), settings.Database.TopScores)
	userStats := pacman.NewUserStats(repo.NewUserStatRepo(db))

	mw := []server.Middleware{
		middleware.RequestIDMiddleware,
		middleware.LoggingMiddlewareWrapper,
		middleware.PromHTTPMiddleware,
	}

	apis := []server.API{
		handlers.NewLocationAPI("/loc", locator),
		handlers.NewHighScoresAPI("/highscores", highScores),
		handlers.NewUserAPI("/user", userStats),
		handlers.NewHealthzAPI("/healthz"),
		handlers.NewPromMetricsAPI("/metrics", nil),
	}

	if settings.Server.Profiling {
		apis = append(apis, handlers.NewProfilingAPI("/debug/pprof/"))
	}

	// Expose the service
	logger.Info().Uint("port", settings.Server.Port).Msg("Starting service")
	server.New(build.Version()).
		WithAddress(fmt.Sprintf(":%d", settings.Server.Port)).
		WithMiddleware(mw...).
		WithAPIs(apis...).
		WithListener(server.HTTPListener()).
		Run(ctx)
	logger.Info().Msg("Service stopping")
}

// HandleShutdownEvents waits for SIGINT or SIGTERM and closes the database.
func HandleShutdownEvents(ctx context.Context, db *gorm.DB) {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-signalChan

	log.Ctx(ctx).Info().Str("signal", sig.String()).Msg("Received signal, service stopping")
	if err := core.Close(db); err != nil {
		log.Ctx(ctx).Err(err).Msg("failed to close database")
	}
}
