package main

import (
	"fmt"
	"os"

	"plate-service/internal/auth"
	"plate-service/internal/config"
	"plate-service/internal/db"
	httphandler "plate-service/internal/http"
	"plate-service/internal/http/middleware"
	"plate-service/internal/logger"
	"plate-service/internal/repository"
	"plate-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	vehicleRepo := repository.NewVehicleRepository(database)
	eventRepo := repository.NewLprEventRepository(database)

	plateService := service.NewPlateService(cfg.Plate.PreferredFormats)
	vehicleService := service.NewVehicleService(vehicleRepo, plateService)
	eventService := service.NewEventService(eventRepo, vehicleRepo, plateService)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(plateService, vehicleService, eventService, appLogger)
	authMiddleware := middleware.Auth(tokenParser)
	internalMiddleware := middleware.InternalToken(cfg.Auth.InternalToken)
	router := httphandler.NewRouter(handler, authMiddleware, internalMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting plate service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
