// Package gtalconfig loads and saves engine.Params as YAML documents and
// resolves the named presets (default, imperceptibility, performance) to
// concrete parameter sets, following the struct-of-fields-plus-defaults
// pattern used across the example corpus's own config packages.
package gtalconfig
