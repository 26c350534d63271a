package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stegoweave/gtal/carrier"
)

// loadCarrier dispatches on path's extension between the image and WAV
// loaders; both formats are self-describing enough that sniffing the
// extension is sufficient.
func loadCarrier(path string) (carrier.Carrier, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening carrier: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return carrier.LoadWAV(f)
	default:
		return carrier.LoadImage(f)
	}
}

func saveCarrier(path string, c carrier.Carrier) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()
	return c.Save(out)
}
