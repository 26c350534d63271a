package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stegoweave/gtal/engine"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Args:  cobra.NoArgs,
	Short: "Extract a payload from a carrier",
	RunE:  runExtract,
}

var (
	extractCarrierPath string
	extractOutPath     string
	extractKeyPath     string
)

func init() {
	extractCmd.Flags().StringVar(&extractCarrierPath, "carrier", "", "input carrier file (required)")
	extractCmd.Flags().StringVar(&extractOutPath, "out", "", "output file for the recovered payload (required)")
	extractCmd.Flags().StringVar(&extractKeyPath, "key", "", "32-byte key file (required)")
	for _, name := range []string{"carrier", "out", "key"} {
		extractCmd.MarkFlagRequired(name)
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	params, err := resolveParams()
	if err != nil {
		return err
	}

	c, err := loadCarrier(extractCarrierPath)
	if err != nil {
		return err
	}

	eng := engine.New()
	ciphertext, err := eng.Extract(cmd.Context(), c, params)
	if err != nil {
		return fmt.Errorf("extracting: %w", err)
	}

	provider, err := loadProvider(extractKeyPath)
	if err != nil {
		return err
	}
	plaintext, err := provider.Decrypt(ciphertext)
	if err != nil {
		return fmt.Errorf("decrypting payload: %w", err)
	}

	if err := os.WriteFile(extractOutPath, plaintext, 0o644); err != nil {
		return fmt.Errorf("writing payload: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "extracted %d bytes to %s\n", len(plaintext), extractOutPath)
	return nil
}
