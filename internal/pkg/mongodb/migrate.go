package mongodb

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratemongo "github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file" // file:// source driver
	"go.mongodb.org/mongo-driver/mongo"
)

// Migrate applies the JSON command migrations found in dir to the database.
func Migrate(client *mongo.Client, database, dir string) error {
	driver, err := migratemongo.WithInstance(client, &migratemongo.Config{
		DatabaseName: database,
	})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+dir, database, driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	// m.Close is not called: the mongodb driver would disconnect the shared client.

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	slog.Info("store migrations applied", "version", version, "dirty", dirty)

	return nil
}
