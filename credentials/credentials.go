// Package credentials stores the integration token and author id that
// init obtains and publish consumes
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileName is the name of the credentials file in the home directory
const FileName = ".markmedium"

// ErrNotInitialized is wrapped in the ConfigError returned when there is no
// credentials file yet
var ErrNotInitialized = errors.New(`no credentials found, run "markmedium init" first`)

// Credentials is the record persisted by init
type Credentials struct {
	Token    string `json:"token"`
	AuthorID string `json:"id"`
}

// ConfigError is returned when the credentials file cannot be located,
// read, decoded, or written
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config error: %v", e.Err)
	}
	return fmt.Sprintf("config error at %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// DefaultPath returns the location of the credentials file in the user's
// home directory
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", &ConfigError{Err: fmt.Errorf("error locating home directory: %w", err)}
	}
	return filepath.Join(home, FileName), nil
}

// Load reads credentials from a file
func Load(path string) (*Credentials, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &ConfigError{Path: path, Err: ErrNotInitialized}
	}
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	defer f.Close()

	var c Credentials
	err = json.NewDecoder(f).Decode(&c)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("error decoding credentials: %w", err)}
	}

	if c.Token == "" {
		return nil, &ConfigError{Path: path, Err: errors.New("credentials file contains no token")}
	}
	if c.AuthorID == "" {
		return nil, &ConfigError{Path: path, Err: errors.New("credentials file contains no author id")}
	}

	return &c, nil
}

// Save writes credentials to a file, replacing whatever was there
func Save(path string, c *Credentials) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	defer f.Close()

	err = json.NewEncoder(f).Encode(c)
	if err != nil {
		return &ConfigError{Path: path, Err: fmt.Errorf("error writing credentials: %w", err)}
	}

	err = f.Close()
	if err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	return nil
}
