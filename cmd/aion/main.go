package main

import (
	"log"
	"net/http"
	"time"

	"github.com/aionhq/aion-backend/internal/api"
	"github.com/aionhq/aion-backend/internal/calendar"
	"github.com/aionhq/aion-backend/internal/config"
	"github.com/aionhq/aion-backend/internal/planner"
	"github.com/aionhq/aion-backend/internal/store/memory"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initialize logger: %v", err)
	}

	store := memory.NewStore(logger)
	reconciler := calendar.NewReconciler(logger, calendar.Feed)
	plannerClient := planner.NewHTTPClient(logger, config.PlannerURL(), config.PlannerAPIKey(), config.PlannerTimeout())
	checkin := planner.NewCheckin(logger, plannerClient, store, time.Now)

	api := api.NewApi(logger, store, reconciler, checkin, plannerClient, time.Now)

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	logger.Infow("Started server", "port", config.Port())
	logger.Fatalw("server error", "err", server.ListenAndServe())
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
