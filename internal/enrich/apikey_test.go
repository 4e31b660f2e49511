// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package enrich

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// Subtests mutate OMDB_API_KEY, so they do not run in parallel.
func TestResolveAPIKey(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "omdb_config.json")
	envFile := filepath.Join(dir, ".env")
	missing := filepath.Join(dir, "missing")

	writeFile(t, keyFile, `{"omdb_api_key": "from-json"}`)
	writeFile(t, envFile, "# local settings\nOMDB_API_KEY=from-dotenv\n")

	placeholderJSON := filepath.Join(dir, "placeholder.json")
	writeFile(t, placeholderJSON, `{"omdb_api_key": "your_api_key_here"}`)

	tests := []struct {
		name       string
		configured string
		env        string
		keyFile    string
		envFile    string
		wantKey    string
		wantSource KeySource
		wantErr    error
	}{
		{"configured wins", "from-config", "from-env", keyFile, envFile, "from-config", KeySourceConfig, nil},
		{"environment", "", "from-env", keyFile, envFile, "from-env", KeySourceEnv, nil},
		{"placeholder env is ignored", "", "your_api_key_here", keyFile, envFile, "from-json", KeySourceKeyFile, nil},
		{"json file", "", "", keyFile, envFile, "from-json", KeySourceKeyFile, nil},
		{"dotenv", "", "", missing, envFile, "from-dotenv", KeySourceDotEnv, nil},
		{"placeholder json falls through", "", "", placeholderJSON, envFile, "from-dotenv", KeySourceDotEnv, nil},
		{"nothing", "", "", missing, missing, "", "", ErrNoAPIKey},
		{"placeholder configured", "your_api_key_here", "", "", "", "", "", ErrNoAPIKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(APIKeyEnvVar, tt.env)
			key, source, err := ResolveAPIKey(tt.configured, tt.keyFile, tt.envFile)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if key != tt.wantKey || source != tt.wantSource {
				t.Errorf("ResolveAPIKey() = (%q, %q), want (%q, %q)", key, source, tt.wantKey, tt.wantSource)
			}
		})
	}
}

func TestResolveAPIKey_MalformedKeyFile(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "")
	path := filepath.Join(t.TempDir(), "omdb_config.json")
	writeFile(t, path, "{not json")

	if _, _, err := ResolveAPIKey("", path, ""); err == nil || errors.Is(err, ErrNoAPIKey) {
		t.Errorf("error = %v, want a parse error", err)
	}
}

func TestSaveAPIKey(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "")
	path := filepath.Join(t.TempDir(), "omdb_config.json")

	if err := SaveAPIKey(path, "saved-key"); err != nil {
		t.Fatalf("SaveAPIKey() error = %v", err)
	}
	key, source, err := ResolveAPIKey("", path, "")
	if err != nil || key != "saved-key" || source != KeySourceKeyFile {
		t.Errorf("ResolveAPIKey() = (%q, %q, %v)", key, source, err)
	}
}
