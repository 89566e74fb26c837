// Package db opens and migrates the gorm database connection.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"user_backend/internal/feature/users/domain/entity"
)

// Config holds the database connection settings.
type Config struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string

	// InstanceName is the Cloud SQL instance connection name. When set,
	// the connection goes through the Unix socket and Host/Port are ignored.
	InstanceName string

	// SQLitePath is the local database file used when no MySQL host or
	// instance is configured.
	SQLitePath string
}

// LoadConfigFromEnv reads the database configuration from environment variables.
func LoadConfigFromEnv() Config {
	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "./users.db"
	}
	return Config{
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		Name:         os.Getenv("DB_NAME"),
		Host:         os.Getenv("DB_HOST"),
		Port:         os.Getenv("DB_PORT"),
		InstanceName: os.Getenv("INSTANCE_CONNECTION_NAME"),
		SQLitePath:   path,
	}
}

// BuildDSN assembles the MySQL DSN. A Cloud SQL instance name takes
// precedence over Host/Port.
func BuildDSN(cfg Config) string {
	if cfg.InstanceName != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// OpenFunc opens a gorm connection for the given DSN.
type OpenFunc func(dsn string) (*gorm.DB, error)

// ConnectWithRetry keeps attempting to connect every 3 seconds until it
// succeeds or the timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open OpenFunc) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %v: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB opens the database from environment configuration: MySQL when a
// host or Cloud SQL instance is configured, a local SQLite file otherwise.
// The SQLite path always migrates; MySQL migrates when RUN_MIGRATIONS=true.
func OpenDB() *gorm.DB {
	cfg := LoadConfigFromEnv()

	if cfg.Host == "" && cfg.InstanceName == "" {
		db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open sqlite database: %v", err)
		}
		log.Println("USING_SQLITE:", cfg.SQLitePath)
		if err := db.AutoMigrate(&entity.User{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
		return db
	}

	db, err := ConnectWithRetry(BuildDSN(cfg), 60*time.Second, func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gmysql.Open(dsn), &gorm.Config{})
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(&entity.User{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
