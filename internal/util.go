package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"famafrench/internal/wrds"
)

// Secrets carries everything needed to reach the WRDS warehouse.
// Values come from secrets.json when present, with env vars taking
// precedence so notebook-style WRDS_USERNAME/WRDS_PASSWORD setups
// keep working.
type Secrets struct {
	Wrds WrdsSecrets `json:"wrds"`
}

type WrdsSecrets struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
}

func (w WrdsSecrets) ConnectionParams() wrds.ConnectionParams {
	return wrds.ConnectionParams{
		Username: w.Username,
		Password: w.Password,
		Host:     w.Host,
		Port:     w.Port,
		Database: w.Database,
	}
}

func LoadSecrets() (*Secrets, error) {
	secrets := Secrets{}

	secretsFile := "secrets.json"
	if os.Getenv("FF_ENV") == "test" {
		secretsFile = "secrets-test.json"
	}
	if f, err := os.ReadFile(secretsFile); err == nil {
		if err := json.Unmarshal(f, &secrets); err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", secretsFile, err)
		}
	}

	if v := os.Getenv("WRDS_USERNAME"); v != "" {
		secrets.Wrds.Username = v
	}
	if v := os.Getenv("WRDS_PASSWORD"); v != "" {
		secrets.Wrds.Password = v
	}
	if v := os.Getenv("WRDS_POSTGRES_HOST"); v != "" {
		secrets.Wrds.Host = v
	}
	if v := os.Getenv("WRDS_POSTGRES_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid WRDS_POSTGRES_PORT %q: %w", v, err)
		}
		secrets.Wrds.Port = port
	}

	return &secrets, nil
}
