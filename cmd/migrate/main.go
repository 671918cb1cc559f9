package main

import (
	"vibewealth/internal/config"
	"vibewealth/internal/db"
	"vibewealth/internal/logging"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	log := logging.Setup(cfg.AppEnv, cfg.LogLevel)
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to connect database")
	}
	defer database.Close()

	result, err := db.Migrate(database)
	if err != nil {
		log.WithError(err).Fatal("migration failed")
	}
	if result.Before == result.After {
		log.WithField("version", result.After).Info("schema up to date")
		return
	}
	log.WithFields(logrus.Fields{
		"from": result.Before,
		"to":   result.After,
	}).Info("migrations applied")
}
