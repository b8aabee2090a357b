package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/meshlens/algoconf"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the algorithms with their activation bits",
	Args:  cobra.NoArgs,
	RunE:  runKinds,
}

func runKinds(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for _, k := range algoconf.Kinds() {
		fmt.Fprintf(out, "%-22s bit %d  0b%05b\n", k, uint8(k), k.Bit())
	}
	fmt.Fprintf(out, "%-22s        0b%05b\n", "all", algoconf.MaxMask)

	return nil
}
