package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the rxctl command tree.
func NewRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "rxctl",
		Short: "Run small Rx pipelines from the command line",
		Long: `rxctl loads rx.Config (a TOML file, with environment overrides) and
drives a small demonstration pipeline built from flags, printing each
event to stdout as it is delivered.`,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML rx.Config file")
	root.AddCommand(newIntervalCommand(&configPath))
	root.AddCommand(newSeqCommand(&configPath))
	root.AddCommand(newCronCommand(&configPath))

	return root
}
