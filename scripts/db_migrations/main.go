package main

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/household-server/internal/config"
	"github.com/carson-networks/household-server/internal/storage"
)

func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		logrus.WithError(err).Fatal("sql.Open")
		return
	}
	defer db.Close()

	result, err := storage.RunMigrations(db)
	if err != nil {
		logrus.WithError(err).Fatal("storage.RunMigrations")
		return
	}

	logrus.WithFields(logrus.Fields{
		"host":                 env.PostgresAddress,
		"database":             env.PostgresDB,
		"preMigrationVersion":  result.Before,
		"postMigrationVersion": result.After,
	}).Info("Migration status")
}
