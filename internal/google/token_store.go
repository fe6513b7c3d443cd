package google

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/oauth2"
)

// TokenStore persists the OAuth token between runs. Load returns (nil, nil)
// when no token has been cached yet.
type TokenStore interface {
	Load() (*oauth2.Token, error)
	Save(*oauth2.Token) error
}

// FileTokenStore stores the token as JSON in a single file. The file carries
// access and refresh tokens and is written with owner-only permissions.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a file-backed token store at path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Path returns the location of the cache file.
func (s *FileTokenStore) Path() string {
	return s.path
}

// Load reads the cached token. A missing cache file is not an error.
func (s *FileTokenStore) Load() (*oauth2.Token, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read token cache: %w", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(b, &tok); err != nil {
		return nil, fmt.Errorf("decode token cache: %w", err)
	}
	return &tok, nil
}

// Save writes the token, replacing any previous cache. The write goes through
// a temp file and rename so a crash cannot leave a truncated cache behind.
func (s *FileTokenStore) Save(tok *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	b, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	b = append(b, '\n')

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write token cache: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("commit token cache: %w", err)
	}
	return nil
}

// Delete removes the cache file. Deleting an absent cache is not an error.
func (s *FileTokenStore) Delete() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// DefaultTokenPath returns the cache location for the named account, e.g.
// ~/.cache/calexport/token-default.json on Linux.
func DefaultTokenPath(account string) string {
	return filepath.Join(userCacheDir(), "calexport", fmt.Sprintf("token-%s.json", account))
}

func userCacheDir() string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Caches")
	case "windows":
		for _, ev := range []string{"TEMP", "TMP"} {
			if v := os.Getenv(ev); v != "" {
				return v
			}
		}
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(homeDir(), ".cache")
}

func homeDir() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
	}
	return os.Getenv("HOME")
}
