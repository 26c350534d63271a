package gtalconfig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/stegoweave/gtal/engine"
)

// ErrUnknownPreset indicates a preset name that does not resolve to any
// of the named parameter sets engine exposes.
var ErrUnknownPreset = errors.New("gtalconfig: unknown preset")

// Document is the on-disk mirror of engine.Params, field for field, with
// yaml tags for human-editable config files.
type Document struct {
	SamplesPerVertex     int   `yaml:"samples_per_vertex"`
	MessageBitsPerVertex int   `yaml:"message_bits_per_vertex"`
	DistanceMax          int   `yaml:"distance_max"`
	Quantum              int   `yaml:"quantum"`
	VerticesPerMatching  int   `yaml:"vertices_per_matching"`
	ReserveMatching      int   `yaml:"reserve_matching"`
	Seed                 int64 `yaml:"seed"`
}

// FromParams copies an engine.Params into its Document mirror.
func FromParams(p engine.Params) Document {
	return Document{
		SamplesPerVertex:     p.SamplesPerVertex,
		MessageBitsPerVertex: p.MessageBitsPerVertex,
		DistanceMax:          p.DistanceMax,
		Quantum:              p.Quantum,
		VerticesPerMatching:  p.VerticesPerMatching,
		ReserveMatching:      p.ReserveMatching,
		Seed:                 p.Seed,
	}
}

// ToParams builds an engine.Params from a Document, running every field
// through engine's own Option clamps so a hand-edited config file can
// never produce an out-of-range Params.
func (d Document) ToParams() engine.Params {
	return engine.NewParams(
		engine.WithSamplesPerVertex(d.SamplesPerVertex),
		engine.WithMessageBitsPerVertex(d.MessageBitsPerVertex),
		engine.WithDistanceMax(d.DistanceMax),
		engine.WithQuantum(d.Quantum),
		engine.WithVerticesPerMatching(d.VerticesPerMatching),
		engine.WithReserveMatching(d.ReserveMatching),
		engine.WithSeed(d.Seed),
	)
}

// Preset resolves a case-insensitive preset name to its engine.Params.
func Preset(name string) (engine.Params, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return engine.Default(), nil
	case "imperceptibility":
		return engine.Imperceptibility(), nil
	case "performance":
		return engine.Performance(), nil
	default:
		return engine.Params{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// Load reads a YAML Document from r and returns the resulting Params.
func Load(r io.Reader) (engine.Params, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return engine.Params{}, fmt.Errorf("gtalconfig: decode: %w", err)
	}
	return doc.ToParams(), nil
}

// LoadFile opens path and loads a Params from it.
func LoadFile(path string) (engine.Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return engine.Params{}, fmt.Errorf("gtalconfig: open: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Save writes params to w as YAML.
func Save(w io.Writer, params engine.Params) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(FromParams(params)); err != nil {
		return fmt.Errorf("gtalconfig: encode: %w", err)
	}
	return nil
}

// SaveFile writes params to path as YAML, creating or truncating it.
func SaveFile(path string, params engine.Params) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gtalconfig: create: %w", err)
	}
	defer f.Close()
	return Save(f, params)
}
