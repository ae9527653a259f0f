// Package iconsets loads the manifest describing which remote icon sets can
// be refreshed and where their lists are stored.
package iconsets

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"iconlist/internal/pipeline"
)

//go:embed default.yaml
var defaultManifest []byte

// DefaultTimeout applies to sets that do not configure their own.
const DefaultTimeout = 10 * time.Second

type (
	// Manifest is the top-level YAML document.
	Manifest struct {
		Sets []Set `yaml:"sets"`
	}

	// Set describes one remote icon set.
	Set struct {
		Name        string          `yaml:"name"`
		Label       string          `yaml:"label"`
		URL         string          `yaml:"url"`
		Format      pipeline.Format `yaml:"format"`
		Output      string          `yaml:"output"`
		UserAgent   string          `yaml:"user_agent"`
		Timeout     time.Duration   `yaml:"timeout"`
		MatchSuffix string          `yaml:"match_suffix"`
		TrimSuffix  bool            `yaml:"trim_suffix"`
		Sort        bool            `yaml:"sort"`
	}
)

// Default returns the embedded manifest.
func Default() *Manifest {
	m, err := Parse(defaultManifest)
	if err != nil {
		panic(fmt.Sprintf("iconsets: embedded manifest: %v", err))
	}
	return m
}

// Load reads a manifest from path, or returns Default when path is empty.
func Load(path string) (*Manifest, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a manifest, filling per-set defaults.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	seen := make(map[string]bool, len(m.Sets))
	for i := range m.Sets {
		s := &m.Sets[i]
		s.Name = strings.TrimSpace(s.Name)
		if s.Name == "" {
			return nil, fmt.Errorf("parse manifest: set %d has no name", i)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("parse manifest: duplicate set %q", s.Name)
		}
		seen[s.Name] = true

		if s.URL == "" {
			return nil, fmt.Errorf("parse manifest: set %q has no url", s.Name)
		}
		switch s.Format {
		case "":
			s.Format = pipeline.FormatEntries
		case pipeline.FormatEntries, pipeline.FormatKeys:
		default:
			return nil, fmt.Errorf("parse manifest: set %q has unknown format %q", s.Name, s.Format)
		}
		if s.Label == "" {
			s.Label = s.Name
		}
		if s.Output == "" {
			s.Output = s.Name + "-list.txt"
		}
		if s.Timeout <= 0 {
			s.Timeout = DefaultTimeout
		}
	}
	return &m, nil
}

// Lookup returns the set called name.
func (m *Manifest) Lookup(name string) (Set, bool) {
	for _, s := range m.Sets {
		if s.Name == name {
			return s, true
		}
	}
	return Set{}, false
}

// Select returns the named sets in the order given, or every set when names
// is empty.
func (m *Manifest) Select(names []string) ([]Set, error) {
	if len(names) == 0 {
		return m.Sets, nil
	}
	out := make([]Set, 0, len(names))
	for _, name := range names {
		s, ok := m.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown icon set %q", name)
		}
		out = append(out, s)
	}
	return out, nil
}

// Options converts the set into pipeline options.
func (s Set) Options() pipeline.Options {
	return pipeline.Options{
		IconSet:         s.Name,
		URL:             s.URL,
		OutputPath:      s.Output,
		Format:          s.Format,
		MatchSuffix:     s.MatchSuffix,
		TrimSuffix:      s.TrimSuffix,
		Sort:            s.Sort,
		RequireNonEmpty: true,
	}
}
