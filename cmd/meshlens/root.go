// meshlens runs topology and telemetry analytics over mesh-network snapshots.
//
// Usage:
//
//	meshlens run      --graph snap.yaml [--config algos.yaml] [--algorithms 0b00111] [--set kind.key=value]
//	meshlens watch    --graph snap.yaml --config algos.yaml [--metrics-addr :9090]
//	meshlens generate --topology mesh --nodes 20 --samples 30 -o snap.yaml
//	meshlens kinds
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/meshlens/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "meshlens",
	Short: "Graph analytics for mesh-network snapshots",
	Long: "meshlens loads a mesh snapshot (nodes, links and their sample histories)\n" +
		"and runs the enabled analytics: articulation points, global min cut,\n" +
		"diffusion centrality, most similar timeline and predicted state.",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := logging.ParseLevel(rootFlags.logLevel)
		if err != nil {
			return err
		}
		switch rootFlags.logFormat {
		case "text", "json":
		default:
			return fmt.Errorf("unknown log format %q (want text or json)", rootFlags.logFormat)
		}
		logging.Init(level, rootFlags.logFormat, cmd.ErrOrStderr())

		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(kindsCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
