package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stegoweave/gtal/engine"
)

var embedCmd = &cobra.Command{
	Use:   "embed",
	Args:  cobra.NoArgs,
	Short: "Embed a payload into a carrier",
	RunE:  runEmbed,
}

var (
	embedCarrierPath string
	embedOutPath     string
	embedPayloadPath string
	embedKeyPath     string
)

func init() {
	embedCmd.Flags().StringVar(&embedCarrierPath, "carrier", "", "input carrier file (required)")
	embedCmd.Flags().StringVar(&embedOutPath, "out", "", "output carrier file (required)")
	embedCmd.Flags().StringVar(&embedPayloadPath, "payload", "", "payload file to embed (required)")
	embedCmd.Flags().StringVar(&embedKeyPath, "key", "", "32-byte key file (required)")
	for _, name := range []string{"carrier", "out", "payload", "key"} {
		embedCmd.MarkFlagRequired(name)
	}
}

func runEmbed(cmd *cobra.Command, args []string) error {
	params, err := resolveParams()
	if err != nil {
		return err
	}

	c, err := loadCarrier(embedCarrierPath)
	if err != nil {
		return err
	}

	plaintext, err := os.ReadFile(embedPayloadPath)
	if err != nil {
		return fmt.Errorf("reading payload: %w", err)
	}

	provider, err := loadProvider(embedKeyPath)
	if err != nil {
		return err
	}
	ciphertext, err := provider.Encrypt(plaintext)
	if err != nil {
		return fmt.Errorf("encrypting payload: %w", err)
	}

	eng := engine.New()
	result, err := eng.Embed(cmd.Context(), c, ciphertext, params, nil)
	if err != nil {
		return fmt.Errorf("embedding: %w", err)
	}

	if err := saveCarrier(embedOutPath, c); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "embedded %d bytes: matched=%d adjusted=%d batches=%d operation=%s\n",
		len(ciphertext), result.MatchedCount, result.AdjustedCount, result.BatchCount, result.OperationID)
	return nil
}
