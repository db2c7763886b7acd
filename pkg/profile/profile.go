package profile

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EmbeddedProfileYAML holds build-time injected YAML. Empty when not provided.
// Set via: -ldflags "-X 'dummygen/pkg/profile.EmbeddedProfileYAML=...'"
var EmbeddedProfileYAML string

// TypeRange is a per-extension size window in KB.
type TypeRange struct {
	MinKB int64 `yaml:"min_kb"`
	MaxKB int64 `yaml:"max_kb"`
}

// Profile is a named generation preset. Anything left at its zero value
// keeps the built-in default; explicit CLI flags still win over profile
// values.
type Profile struct {
	Name        string               `yaml:"name"`
	Description string               `yaml:"description"`
	OutDir      string               `yaml:"out_dir"`
	TargetMB    int64                `yaml:"target_mb"`
	Extensions  []string             `yaml:"extensions"`
	Ranges      map[string]TypeRange `yaml:"ranges"`
	ApproxFiles int64                `yaml:"approx_files"`
	MinSizeKB   int64                `yaml:"min_size_kb"`
	MaxSizeKB   int64                `yaml:"max_size_kb"`
	Seed        *int64               `yaml:"seed"`
	DryRun      *bool                `yaml:"dry_run"`

	Source string `yaml:"-"`
}

// FromYAML parses a raw YAML profile definition.
func FromYAML(data string) (*Profile, error) {
	trimmed := strings.TrimSpace(data)
	if trimmed == "" {
		return nil, errors.New("profile YAML is empty")
	}
	var prof Profile
	if err := yaml.Unmarshal([]byte(trimmed), &prof); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}
	if prof.Name == "" {
		return nil, errors.New("profile missing required field 'name'")
	}
	return &prof, nil
}

// LoadFile loads a profile from a YAML file path.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}
	prof, err := FromYAML(string(data))
	if err != nil {
		return nil, err
	}
	prof.Source = path
	return prof, nil
}

// LoadEmbedded parses the embedded profile definition if present.
func LoadEmbedded() (*Profile, error) {
	if !HasEmbedded() {
		return nil, errors.New("no embedded profile available")
	}
	raw := strings.TrimSpace(EmbeddedProfileYAML)
	prof, err := FromYAML(raw)
	if err == nil {
		prof.Source = "embedded"
		return prof, nil
	}

	// Allow base64 encoded payloads for ease of ldflags embedding
	decoded, decodeErr := base64.StdEncoding.DecodeString(raw)
	if decodeErr != nil {
		return nil, err
	}
	prof, err = FromYAML(string(decoded))
	if err != nil {
		return nil, err
	}
	prof.Source = "embedded"
	return prof, nil
}

// HasEmbedded reports whether a build-time profile is embedded.
func HasEmbedded() bool {
	return strings.TrimSpace(EmbeddedProfileYAML) != ""
}
