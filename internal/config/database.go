package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresConfig is one connection target. Writer and reader are read from
// POSTGRES_WRITER_* and POSTGRES_READER_* so they can point at a primary and a replica.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type ConnectionPoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func loadPostgresConfig(role string) *PostgresConfig {
	key := func(name string) string { return "POSTGRES_" + role + "_" + name }
	return &PostgresConfig{
		Host:     getEnv(key("HOST"), "localhost"),
		Port:     getEnv(key("PORT"), "5432"),
		User:     getEnv(key("USER"), "postgres"),
		Password: getEnv(key("PASSWORD"), ""),
		DBName:   getEnv(key("DB_NAME"), "property_docs"),
		SSLMode:  getEnv(key("SSL_MODE"), "disable"),
	}
}

func loadConnectionPoolConfig() *ConnectionPoolConfig {
	return &ConnectionPoolConfig{
		MaxOpenConns:    getEnvPositiveInt("DB_MAX_OPEN_CONNS", 50),
		MaxIdleConns:    getEnvPositiveInt("DB_MAX_IDLE_CONNS", 10),
		ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", time.Hour),
	}
}

// gormLogLevel maps DB_LOG_LEVEL (silent, error, warn, info) to gorm's levels.
func gormLogLevel() logger.LogLevel {
	switch strings.ToLower(getEnv("DB_LOG_LEVEL", "warn")) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

func (c *PostgresConfig) open(pool *ConnectionPoolConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(c.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s/%s: %w", c.Host, c.DBName, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)

	return db, nil
}

// DatabaseConnections holds the writer (primary) and reader (replica) handles
type DatabaseConnections struct {
	Writer *gorm.DB
	Reader *gorm.DB
}

func NewDatabaseConnections() (*DatabaseConnections, error) {
	pool := loadConnectionPoolConfig()

	writer, err := loadPostgresConfig("WRITER").open(pool)
	if err != nil {
		return nil, fmt.Errorf("writer database: %w", err)
	}

	reader, err := loadPostgresConfig("READER").open(pool)
	if err != nil {
		closeDB(writer)
		return nil, fmt.Errorf("reader database: %w", err)
	}

	return &DatabaseConnections{Writer: writer, Reader: reader}, nil
}

func (dc *DatabaseConnections) Close() error {
	return errors.Join(closeDB(dc.Writer), closeDB(dc.Reader))
}

func closeDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
