package main

import (
	"fmt"
	"os"

	"github.com/stegoweave/gtal/cryptoprovider"
)

// loadKey reads path and uses its first 32 bytes (the ChaCha20-Poly1305
// key size) as the key; a shorter file is an error, and bytes past the
// first 32 are ignored.
func loadKey(path string) ([32]byte, error) {
	var key [32]byte

	raw, err := os.ReadFile(path)
	if err != nil {
		return key, fmt.Errorf("reading key file: %w", err)
	}
	if len(raw) < len(key) {
		return key, fmt.Errorf("key file %s holds %d bytes, need %d", path, len(raw), len(key))
	}
	copy(key[:], raw[:len(key)])
	return key, nil
}

func loadProvider(path string) (*cryptoprovider.ChaCha20Poly1305, error) {
	key, err := loadKey(path)
	if err != nil {
		return nil, err
	}
	return cryptoprovider.NewChaCha20Poly1305(key), nil
}
