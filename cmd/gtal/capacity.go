package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stegoweave/gtal/engine"
)

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Args:  cobra.NoArgs,
	Short: "Report how many payload bytes a carrier can hold under the chosen preset",
	RunE:  runCapacity,
}

var capacityCarrierPath string

func init() {
	capacityCmd.Flags().StringVar(&capacityCarrierPath, "carrier", "", "input carrier file (required)")
	capacityCmd.MarkFlagRequired("carrier")
}

func runCapacity(cmd *cobra.Command, args []string) error {
	params, err := resolveParams()
	if err != nil {
		return err
	}

	c, err := loadCarrier(capacityCarrierPath)
	if err != nil {
		return err
	}

	bandwidth := engine.ComputeBandwidth(len(c.Bytes()), params)
	fmt.Fprintf(cmd.OutOrStdout(), "%d bytes\n", bandwidth)
	return nil
}
