package main

import (
	"fmt"

	"github.com/stegoweave/gtal/engine"
	"github.com/stegoweave/gtal/gtalconfig"
)

// resolveParams loads engine.Params from --config if given, otherwise
// resolves --preset; --config takes precedence when both are set.
func resolveParams() (engine.Params, error) {
	if configFile != "" {
		p, err := gtalconfig.LoadFile(configFile)
		if err != nil {
			return engine.Params{}, fmt.Errorf("loading config: %w", err)
		}
		return p, nil
	}

	p, err := gtalconfig.Preset(presetName)
	if err != nil {
		return engine.Params{}, err
	}
	return p, nil
}
