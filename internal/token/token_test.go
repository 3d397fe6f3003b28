package token

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStore_MissingFileHasNoToken(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "token.toml"))
	if got := s.Token(); got != "" {
		t.Fatalf("Token = %q, want empty", got)
	}
}

func TestFileStore_SaveThenReadAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.toml")

	if err := NewFileStore(path).Save("T2VuZQ=="); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(bytes), Key) {
		t.Fatalf("token file = %q, want key %q", bytes, Key)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("token file mode = %v, want 0600", perm)
	}

	if got := NewFileStore(path).Token(); got != "T2VuZQ==" {
		t.Fatalf("Token = %q, want T2VuZQ==", got)
	}
}

func TestFileStore_Drop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.toml")
	s := NewFileStore(path)
	if err := s.Save("abc"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := s.Drop(); err != nil {
		t.Fatalf("Drop returned error: %v", err)
	}
	if got := s.Token(); got != "" {
		t.Fatalf("Token after Drop = %q, want empty", got)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("token file still exists after Drop: %v", err)
	}
	if err := s.Drop(); err != nil {
		t.Fatalf("second Drop returned error: %v", err)
	}
}

func TestFileStore_InvalidFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.toml")
	if err := os.WriteFile(path, []byte("not valid toml {{{\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if got := NewFileStore(path).Token(); got != "" {
		t.Fatalf("Token = %q, want empty", got)
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory("a")
	if m.Token() != "a" {
		t.Fatalf("Token = %q, want a", m.Token())
	}
	_ = m.Save("b")
	if m.Token() != "b" {
		t.Fatalf("Token = %q, want b", m.Token())
	}
	_ = m.Drop()
	if m.Token() != "" {
		t.Fatalf("Token = %q, want empty", m.Token())
	}
}
