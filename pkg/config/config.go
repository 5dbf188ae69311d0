package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
)

// Document backends supported by the store layer.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	DataDirectory             string
	DatabaseBusyTimeout       time.Duration
	DatabaseConnectRetryCount int
	DatabaseConnectRetryDelay time.Duration
	DatabaseDebug             bool
	DatabaseFilePath          string
	DatabaseMaxRetries        int
	DocumentBackend           string
	FrontendURL               string
	Hostname                  string
	ServerHost                string
	ServerPort                int
}

const environmentENV = "ENVIRONMENT"

func New() (*Config, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := &Config{
		DatabaseBusyTimeout:       5 * time.Second,
		DatabaseConnectRetryCount: 5,
		DatabaseConnectRetryDelay: 2 * time.Second,
		DatabaseMaxRetries:        3,
		DocumentBackend:           BackendFile,
		Hostname:                  hostname,
		ServerPort:                3690,
	}

	switch os.Getenv(environmentENV) {
	case "development", "":
		loadDevelopmentConfig(cfg)
	case "test":
		loadTestConfig(cfg)
	case "production":
		loadProductionConfig(cfg)
	}

	if backend := os.Getenv("DOCUMENT_BACKEND"); backend != "" {
		cfg.DocumentBackend = backend
	}

	return cfg, nil
}
