// Package workload synthesizes the process descriptors the scheduling
// engines compete over. Generation is deterministic for a given seed, so the
// six policies can be compared over an identical workload.
package workload

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec is the workload configuration. Loadable from YAML via LoadSpec; zero
// fields fall back to the defaults of the original generator.
type Spec struct {
	Seed         int64 `yaml:"seed"`
	NumProcesses int   `yaml:"num_processes"`

	// MaxIOBurst bounds the I/O burst draw: io ∈ [0, MaxIOBurst].
	MaxIOBurst uint `yaml:"max_io_burst,omitempty"`
	// ArrivalSpread scales the arrival window: arrival ∈ [0, ArrivalSpread*N).
	ArrivalSpread uint `yaml:"arrival_spread,omitempty"`
	// PriorityRange bounds the priority draw: priority ∈ [-PriorityRange, PriorityRange].
	PriorityRange int `yaml:"priority_range,omitempty"`
}

// DefaultSpec returns the original generator's parameters for n processes.
func DefaultSpec(n int) Spec {
	return Spec{
		Seed:          42,
		NumProcesses:  n,
		MaxIOBurst:    19,
		ArrivalSpread: 3,
		PriorityRange: 20,
	}
}

// Validate checks the spec and applies defaults for omitted optional fields.
func (s *Spec) Validate() error {
	if s.NumProcesses <= 0 {
		return fmt.Errorf("num_processes must be positive, got %d", s.NumProcesses)
	}
	if s.MaxIOBurst == 0 {
		s.MaxIOBurst = 19
	}
	if s.ArrivalSpread == 0 {
		s.ArrivalSpread = 3
	}
	if s.PriorityRange == 0 {
		s.PriorityRange = 20
	}
	if s.PriorityRange < 0 {
		return fmt.Errorf("priority_range must be non-negative, got %d", s.PriorityRange)
	}
	return nil
}

// LoadSpec reads and validates a Spec from a YAML file.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload spec: %w", err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse workload spec %s: %w", path, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec %s: %w", path, err)
	}
	return &spec, nil
}
