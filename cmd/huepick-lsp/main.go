package main

import (
	"os"

	"github.com/jsvensson/huepick/internal/lsp"
	"github.com/spf13/cobra"
)

var (
	flagVerbose int
	version     = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "huepick-lsp",
	Short: "Language server for huepick swatch files",
	Long: `Language server for huepick swatch files, speaking LSP over stdio.

Logs go to stderr; repeat -v for more detail.`,
	Version:      version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return lsp.NewServer(version).Run(flagVerbose)
	},
}

func init() {
	rootCmd.Flags().CountVarP(&flagVerbose, "verbose", "v", "log verbosity (repeat for more)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
