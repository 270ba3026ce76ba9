package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chng-cli/chng/logger"
)

// fileName is the credentials file stored in the user's home directory.
const fileName = ".apikey"

// ErrMissing is returned by Load when no credentials file exists yet.
var ErrMissing = errors.New("no API configuration found, run 'chng --setup' first")

// ErrIncomplete is returned by Validate when the stored credentials lack
// the fields required to send a generation request.
var ErrIncomplete = errors.New("API configuration is incomplete, run 'chng --setup' first")

// Credentials holds the API connection settings persisted between runs.
type Credentials struct {
	URL    string `json:"url"`
	Port   string `json:"port"`
	APIKey string `json:"key"`
	Model  string `json:"model"`
}

// Path returns the location of the credentials file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, fileName), nil
}

// Load reads the credentials file from the user's home directory.
func Load() (Credentials, error) {
	path, err := Path()
	if err != nil {
		return Credentials{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Credentials{}, ErrMissing
		}
		return Credentials{}, fmt.Errorf("reading config file: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	logger.Debugf("Loaded configuration from %s", path)
	return creds, nil
}

// Save writes the credentials file, overwriting any previous configuration.
// The file is readable by the owner only since it holds the API key.
func (c Credentials) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	// WriteFile only applies the mode on create; enforce it on overwrite too.
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("restricting config file permissions: %w", err)
	}

	logger.Debugf("Saved configuration to %s", path)
	return nil
}

// Validate checks that the credentials can back a generation request.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.URL) == "" || strings.TrimSpace(c.Model) == "" {
		return ErrIncomplete
	}
	return nil
}

// APIURL returns the base URL for API requests. When a separate port is
// configured and the URL does not already carry it, the port is spliced
// into the host part, keeping any path suffix intact.
func (c Credentials) APIURL() string {
	url := strings.TrimRight(c.URL, "/")
	if url == "" {
		return ""
	}

	if c.Port == "" || strings.Contains(url, ":"+c.Port) {
		return url
	}

	scheme, rest, ok := strings.Cut(url, "://")
	if !ok {
		return url
	}

	host, path, hasPath := strings.Cut(rest, "/")
	// Drop any port already present on the host; the configured one wins.
	host, _, _ = strings.Cut(host, ":")

	if hasPath {
		return scheme + "://" + host + ":" + c.Port + "/" + path
	}
	return scheme + "://" + host + ":" + c.Port
}
