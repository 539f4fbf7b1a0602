// Command script creates the record tables and seeds them from a JSON record
// document (the same format served by the file record store).
package main

import (
	"context"
	"database/sql"
	"flag"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/seller-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/seller-dashboard-api/infrastructure/recordfile"
	"github.com/vfg2006/seller-dashboard-api/internal/config"
)

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("migration: starting")
}

func createSchema(ctx context.Context, conn *postgres.Connection) error {
	for _, stmt := range schemaStatements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	logrus.Info("migration: schema ready")
	return nil
}

func seed(ctx context.Context, conn *postgres.Connection, doc *recordfile.Document) error {
	statements, err := buildSeedStatements(doc, nil)
	if err != nil {
		return err
	}

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, truncateStatement); err != nil {
			return err
		}

		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt.sql, stmt.args...); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"products": len(doc.Products),
		"sales":    len(doc.Sales),
		"costs":    len(doc.Costs),
		"elapsed":  time.Since(startTime).String(),
	}).Info("migration: seed committed")

	return nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("migration: invalid configuration")
	}

	dataFile := flag.String("data", cfg.RecordStore.FilePath, "record document used to seed the tables")
	schemaOnly := flag.Bool("schema-only", false, "create the tables without seeding them")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("migration: could not connect to postgres")
	}
	defer conn.Close()

	if err := createSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("migration: could not create schema")
	}

	if *schemaOnly {
		return
	}

	doc, err := recordfile.ReadDocument(*dataFile)
	if err != nil {
		logrus.WithError(err).Fatal("migration: could not read record document")
	}

	if err := seed(ctx, conn, doc); err != nil {
		logrus.WithError(err).Fatal("migration: seed failed, transaction rolled back")
	}
}
