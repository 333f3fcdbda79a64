package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"fintrack/src/api"
	"fintrack/src/config"
	"fintrack/src/database"
	"fintrack/src/scheduler"
	"fintrack/src/utils"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./settings")
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}
	errC, err := run(cfg)
	if err != nil {
		log.Println(err, "Couldn't run")
		return
	}

	if err := <-errC; err != nil {
		log.Println(err, "Error while running")
	}
}

func run(cfg *config.Config) (<-chan error, error) {
	errC := make(chan error, 1)

	logger := utils.NewLogger(cfg.Logging.Level, cfg.Logging.LogToFile, cfg.Logging.FilePath)

	db, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}

	server := api.NewServer(db, cfg, logger)
	httpServer := api.NewHTTPServer(server, cfg)

	if cfg.Scheduler.Enabled {
		if _, err := scheduler.NewSnapshotTask(cfg.Scheduler.SnapshotCron, server.Handler.NetWorth, logger); err != nil {
			return nil, err
		}
		logger.Infof("snapshot scheduler enabled with spec %q", cfg.Scheduler.SnapshotCron)
	}

	go func() {
		logger.Infof("starting server on port %s", cfg.Service.Port)

		// ListenAndServe always returns a non-nil error. After Shutdown or
		// Close, the returned error is ErrServerClosed.
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()
	return errC, nil
}
