// Package prefs persists sixcities user preferences: the UI theme and the
// listing the user last looked at. Preferences live in
// ~/.config/sixcities/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/sixcities/internal/config"
	"github.com/five82/sixcities/internal/listing"
	"github.com/five82/sixcities/internal/sixcities"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme string `toml:"theme"`
	City  string `toml:"city"`
	Sort  string `toml:"sort"`
}

const (
	defaultPrefsPath = "~/.config/sixcities/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Defaults returns the preferences used when nothing is stored.
func Defaults() Prefs {
	return Prefs{
		Theme: defaultTheme,
		City:  string(sixcities.DefaultCity().Name),
		Sort:  listing.Popular.Key(),
	}
}

// Load reads preferences from path. Missing or unreadable files yield
// defaults; preferences never block startup.
func Load(path string) (Prefs, error) {
	prefs := Defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs, nil
	}
	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return prefs, nil
	}

	var stored Prefs
	if err := toml.Unmarshal(bytes, &stored); err != nil {
		return prefs, nil
	}
	if v := strings.TrimSpace(stored.Theme); v != "" {
		prefs.Theme = v
	}
	if v := strings.TrimSpace(stored.City); v != "" {
		prefs.City = v
	}
	if v := strings.TrimSpace(stored.Sort); v != "" {
		prefs.Sort = v
	}
	return prefs, nil
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// StartCity resolves the stored city, falling back to the default city for
// unknown names.
func (p Prefs) StartCity() sixcities.City {
	if city, ok := sixcities.LookupCity(sixcities.CityName(p.City)); ok {
		return city
	}
	return sixcities.DefaultCity()
}

// StartSort resolves the stored sort key, falling back to Popular.
func (p Prefs) StartSort() listing.SortName {
	if sort, ok := listing.ParseSort(p.Sort); ok {
		return sort
	}
	return listing.Popular
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.ExpandPath(defaultPrefsPath)
	}
	return config.ExpandPath(path)
}
