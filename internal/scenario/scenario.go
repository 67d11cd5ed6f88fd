// Package scenario loads batches of harness runs from TOML files.
//
// A scenario file holds one or more [[scenario]] tables:
//
//	[[scenario]]
//	name = "reference"
//	producers = 2
//	consumers = 5
//	items = 30
//
//	[[scenario]]
//	name = "starved"
//	producers = 1
//	consumers = 8
//	items = 2
//	bored_count = 3
//
// Fields left unset fall back to the supplied defaults, so a file only needs
// to name what it changes.
package scenario

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/synclab/pcharness/internal/config"
)

// Scenario is one named run definition.
type Scenario struct {
	Name       string `toml:"name"`
	Producers  int    `toml:"producers"`
	Consumers  int    `toml:"consumers"`
	Items      int    `toml:"items"`
	BoredCount int    `toml:"bored_count"`
	Buffer     *int   `toml:"buffer"`

	pipeline config.PipelineConfig
}

// Pipeline returns the fully resolved run parameters.
func (s Scenario) Pipeline() config.PipelineConfig {
	return s.pipeline
}

type file struct {
	Scenarios []Scenario `toml:"scenario"`
}

// Load parses a scenario file, resolving unset fields against defaults and
// validating every entry. Any invalid entry fails the whole load, before any
// run starts.
func Load(path string, defaults config.PipelineConfig) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file %s defines no scenarios", path)
	}

	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario-%d", i+1)
		}
		s.pipeline = resolve(*s, defaults)
		if err := s.pipeline.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}
	return f.Scenarios, nil
}

// resolve overlays a scenario on the default run parameters. Buffer needs a
// pointer because zero is a meaningful capacity.
func resolve(s Scenario, defaults config.PipelineConfig) config.PipelineConfig {
	cfg := defaults
	if s.Producers != 0 {
		cfg.Producers = s.Producers
	}
	if s.Consumers != 0 {
		cfg.Consumers = s.Consumers
	}
	if s.Items != 0 {
		cfg.Items = s.Items
	}
	if s.BoredCount != 0 {
		cfg.BoredCount = s.BoredCount
	}
	if s.Buffer != nil {
		cfg.Buffer = *s.Buffer
	}
	return cfg
}
