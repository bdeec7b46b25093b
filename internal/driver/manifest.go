package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"smtfuzz/internal/dialect"
	"smtfuzz/internal/transform"
)

// ManifestName is looked up in the campaign directory and its parents.
const ManifestName = "smtfuzz.toml"

// Manifest is the optional on-disk campaign configuration. CLI flags
// override whatever it sets.
type Manifest struct {
	Path     string         `toml:"-"`
	Campaign campaignConfig `toml:"campaign"`
}

type campaignConfig struct {
	Ops        []string `toml:"ops"`
	Seed       int64    `toml:"seed"`
	InDialect  string   `toml:"in_dialect"`
	OutDialect string   `toml:"out_dialect"`
	OutDir     string   `toml:"out_dir"`
	Jobs       int      `toml:"jobs"`
}

// FindManifest walks from startDir to the filesystem root looking for
// smtfuzz.toml.
func FindManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadManifest finds and parses the nearest manifest. The second result
// is false when no manifest exists, which is not an error.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := loadManifestFile(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

func loadManifestFile(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	m.Path = path
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	for _, name := range m.Campaign.Ops {
		if _, err := transform.ParseOp(name); err != nil {
			return fmt.Errorf("[campaign].ops: %w", err)
		}
	}
	if s := m.Campaign.InDialect; s != "" {
		if _, err := dialect.Parse(s); err != nil {
			return fmt.Errorf("[campaign].in_dialect: %w", err)
		}
	}
	if s := m.Campaign.OutDialect; s != "" {
		if _, err := dialect.Parse(s); err != nil {
			return fmt.Errorf("[campaign].out_dialect: %w", err)
		}
	}
	return nil
}

// Ops returns the manifest's operators with default options bound.
func (m *Manifest) Ops() []transform.Transformer {
	out := make([]transform.Transformer, 0, len(m.Campaign.Ops))
	for _, name := range m.Campaign.Ops {
		op, err := transform.ParseOp(name)
		if err != nil {
			continue // validate already rejected unknown names
		}
		out = append(out, transform.Default(op))
	}
	return out
}
