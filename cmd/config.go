package cmd

import (
	"fmt"
	"net/url"
)

// Storage backends.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort               string
	AppEnv                 string
	LogLevel               string
	Storage                string
	SeedFile               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	AMQPURL                string
	AMQPOrdersQueue        string
	AMQPNotificationsQueue string
	StatsSchedule          string
}

// Validate rejects an unknown storage backend before anything is opened.
func (c Config) Validate() error {
	switch c.Storage {
	case StorageMemory, StoragePostgres:
		return nil
	default:
		return fmt.Errorf("unknown STORAGE %q, want %q or %q", c.Storage, StorageMemory, StoragePostgres)
	}
}

// DSN is the PostgreSQL connection string built from the DB_* settings.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// RedactedAMQPURL hides the broker password for logging.
func (c Config) RedactedAMQPURL() string {
	u, err := url.Parse(c.AMQPURL)
	if err != nil {
		return "invalid url"
	}
	return u.Redacted()
}
