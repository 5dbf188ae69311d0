package config

import (
	"os"
	"path/filepath"
	"strconv"
)

func loadProductionConfig(cfg *Config) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err == nil {
		cfg.ServerPort = port
	}

	dataDir := os.Getenv("DATA_DIRECTORY")
	if dataDir == "" {
		dataDir = "/data"
	}

	cfg.DataDirectory = dataDir
	cfg.DatabaseFilePath = filepath.Join(dataDir, "bookri.sqlite")
	cfg.FrontendURL = os.Getenv("FRONTEND_URL")
}
