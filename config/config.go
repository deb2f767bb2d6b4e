// SPDX-License-Identifier: MIT

// Package config loads and validates topocast run configuration.
//
// Files are YAML unless their extension is ".json". Fields missing from a
// file keep their Default value.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every decoding or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the full run configuration.
type Config struct {
	Search    Search    `yaml:"search" json:"search"`
	Scheduler Scheduler `yaml:"scheduler" json:"scheduler"`
	Output    Output    `yaml:"output" json:"output"`
}

// Search bounds the topology table and names its inputs.
type Search struct {
	MaxNodes  int `yaml:"max_nodes" json:"max_nodes" validate:"gte=2,lte=4096"`
	MaxDegree int `yaml:"max_degree" json:"max_degree" validate:"gte=1,lte=64"`
	// ReferencePath is an optional distance-regular dataset (CSV).
	ReferencePath string `yaml:"reference_path" json:"reference_path"`
	// SeedKnown adds the hand-curated topologies before searching.
	SeedKnown bool `yaml:"seed_known" json:"seed_known"`
}

// Scheduler tunes the BFB scheduler.
type Scheduler struct {
	Workers      int      `yaml:"workers" json:"workers" validate:"gte=1,lte=1024"`
	SolveTimeout Duration `yaml:"solve_timeout" json:"solve_timeout" validate:"gte=0"`
	Epsilon      float64  `yaml:"epsilon" json:"epsilon" validate:"gte=0,lt=1"`
}

// Output selects where and how the catalogue is written. An empty Path
// prints the report to stdout.
type Output struct {
	Format string `yaml:"format" json:"format" validate:"oneof=csv yaml"`
	Path   string `yaml:"path" json:"path"`
}

// Duration is a time.Duration written as "30s" in files.
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)

	return nil
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Search:    Search{MaxNodes: 64, MaxDegree: 4, SeedKnown: true},
		Scheduler: Scheduler{Workers: runtime.NumCPU(), SolveTimeout: Duration(30 * time.Second), Epsilon: 1e-5},
		Output:    Output{Format: "yaml"},
	}
}

// Validate checks c against its field constraints and reports the first
// violation. An output path must carry the extension of output.format.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	if c.Output.Path != "" && FormatFor(c.Output.Path) != c.Output.Format {
		return fmt.Errorf("%w: Config.Output.Path %q is not a %s file",
			ErrInvalidConfig, c.Output.Path, c.Output.Format)
	}

	return nil
}

// FormatFor returns the catalogue format implied by path: "csv" for a
// ".csv" extension, "yaml" otherwise.
func FormatFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return "csv"
	}

	return "yaml"
}

// Parse decodes YAML from r over Default and validates the result.
// Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Load reads path; ".json" files are decoded as JSON, anything else as YAML.
func Load(path string) (Config, error) {
	dict, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return Parse(bytes.NewReader(dict))
	}

	c := Default()
	dec := json.NewDecoder(bytes.NewReader(dict))
	dec.DisallowUnknownFields()
	if err = dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err = c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	e := verrs[0]
	switch e.Tag() {
	case "gte":
		return fmt.Errorf("%w: %s must be at least %s", ErrInvalidConfig, e.Namespace(), e.Param())
	case "lte", "lt":
		return fmt.Errorf("%w: %s must be below %s", ErrInvalidConfig, e.Namespace(), e.Param())
	case "oneof":
		return fmt.Errorf("%w: %s must be one of [%s]", ErrInvalidConfig, e.Namespace(), e.Param())
	default:
		return fmt.Errorf("%w: %s failed %q", ErrInvalidConfig, e.Namespace(), e.Tag())
	}
}
