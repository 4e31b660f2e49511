// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package enrich

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
)

// APIKeyEnvVar is the environment variable holding the OMDb key.
const APIKeyEnvVar = "OMDB_API_KEY"

// placeholderKey ships in example .env files and is never a real key.
const placeholderKey = "your_api_key_here"

// ErrNoAPIKey is returned when no OMDb key could be found.
var ErrNoAPIKey = errors.New("no OMDb API key configured")

// KeySource names where an API key was found.
type KeySource string

const (
	KeySourceConfig  KeySource = "config"
	KeySourceEnv     KeySource = "environment"
	KeySourceKeyFile KeySource = "key_file"
	KeySourceDotEnv  KeySource = "dotenv"
)

// ResolveAPIKey looks the key up in order: configured, the OMDB_API_KEY
// environment variable, the JSON keyFile ({"omdb_api_key": "..."}) and the
// dotenv envFile. Missing files are skipped; unreadable ones are errors.
func ResolveAPIKey(configured, keyFile, envFile string) (string, KeySource, error) {
	if key := usableKey(configured); key != "" {
		return key, KeySourceConfig, nil
	}
	if key := usableKey(os.Getenv(APIKeyEnvVar)); key != "" {
		return key, KeySourceEnv, nil
	}

	if keyFile != "" {
		key, err := keyFromJSONFile(keyFile)
		if err != nil {
			return "", "", err
		}
		if key != "" {
			return key, KeySourceKeyFile, nil
		}
	}

	if envFile != "" {
		key, err := keyFromDotEnv(envFile)
		if err != nil {
			return "", "", err
		}
		if key != "" {
			return key, KeySourceDotEnv, nil
		}
	}

	return "", "", ErrNoAPIKey
}

func usableKey(key string) string {
	key = strings.TrimSpace(key)
	if key == placeholderKey {
		return ""
	}
	return key
}

func keyFromJSONFile(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read key file: %w", err)
	}
	var doc struct {
		Key string `json:"omdb_api_key"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("parse key file %s: %w", path, err)
	}
	return usableKey(doc.Key), nil
}

func keyFromDotEnv(path string) (string, error) {
	env, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read env file: %w", err)
	}
	return usableKey(env[APIKeyEnvVar]), nil
}

// SaveAPIKey writes key to the JSON keyFile.
func SaveAPIKey(keyFile, key string) error {
	data, err := json.MarshalIndent(map[string]string{"omdb_api_key": key}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(keyFile, data, 0o600); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	return nil
}
