// Package token persists the API authentication token between sessions.
//
// The token lives in a small TOML file under a fixed key. It is read once on
// first use, cached in memory, and rewritten on Save and Drop. The value is
// opaque: nothing here inspects or validates it.
package token

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// Key is the name the token is stored under.
const Key = "six-cities-token"

// Store saves, drops and reads the auth token.
type Store interface {
	Save(token string) error
	Drop() error
	Token() string
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*Memory)(nil)
)

type document struct {
	Token string `toml:"six-cities-token"`
}

// FileStore keeps the token in a TOML file.
type FileStore struct {
	path string

	mu     sync.Mutex
	loaded bool
	token  string
}

// NewFileStore returns a store backed by path. The file is not touched until
// the token is first needed.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Token returns the stored token, or "" when none is stored or the file
// cannot be read.
func (s *FileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()
	return s.token
}

// Save persists token, replacing any previous value.
func (s *FileStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	bytes, err := toml.Marshal(document{Token: token})
	if err != nil {
		return fmt.Errorf("marshal token: %w", err)
	}
	if err := os.WriteFile(s.path, bytes, 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	s.token = token
	s.loaded = true
	return nil
}

// Drop removes the stored token. Dropping when nothing is stored is not an
// error.
func (s *FileStore) Drop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.loaded = true
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

func (s *FileStore) loadLocked() {
	if s.loaded {
		return
	}
	s.loaded = true

	bytes, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var doc document
	if err := toml.Unmarshal(bytes, &doc); err != nil {
		return
	}
	s.token = strings.TrimSpace(doc.Token)
}

// Memory is an in-process Store.
type Memory struct {
	mu    sync.Mutex
	token string
}

// NewMemory returns a Memory store holding token.
func NewMemory(token string) *Memory {
	return &Memory{token: token}
}

func (m *Memory) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *Memory) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *Memory) Drop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
