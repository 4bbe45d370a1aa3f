package main

import (
	"fmt"
	"os"

	"github.com/jsvensson/huepick"
	"github.com/jsvensson/huepick/internal/engine"
	"github.com/jsvensson/huepick/internal/format"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	flagSwatches  string
	flagOut       string
	flagTemplates string
	flagOnly      []string
	flagCheck     bool
	flagVerbose   int
	version       = "dev" // Injected at build time via ldflags
)

var log = commonlog.GetLogger("huepick")

var rootCmd = &cobra.Command{
	Use:     "huepick",
	Short:   "Convert, inspect and export HSV/RGB picker colors",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(flagVerbose, nil)
	},
	SilenceUsage: true,
}

var listCmd = &cobra.Command{
	Use:   "list FILE",
	Short: "List the swatches in a swatch file",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render templates with a swatch library",
	RunE:  runExport,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format swatch files",
	Long:  "Format one or more swatch files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (can be repeated)")
	exportCmd.Flags().StringVar(&flagSwatches, "swatches", "swatches.hcl", "path to swatch HCL file")
	exportCmd.Flags().StringVar(&flagOut, "out", "output", "output directory")
	exportCmd.Flags().StringVar(&flagTemplates, "templates", "templates", "templates directory")
	exportCmd.Flags().StringArrayVar(&flagOnly, "only", nil, "render only the named outputs (can be repeated)")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	lib, err := huepick.Load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if lib.Meta.Name != "" {
		fmt.Fprintf(out, "# %s\n", lib.Meta.Name)
	}
	for _, s := range lib.Swatches {
		fmt.Fprintf(out, "%s %-16s %s  %s\n", chip(s.Color), s.Name, s.Color.RGBAHex(), s.Color.HSV())
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	lib, err := huepick.Load(flagSwatches)
	if err != nil {
		return err
	}

	e := &engine.Engine{
		TemplatesDir: flagTemplates,
		OutputDir:    flagOut,
		Only:         flagOnly,
	}

	if err := e.Run(lib); err != nil {
		return fmt.Errorf("exporting: %w", err)
	}

	log.Infof("rendered %d swatches from %s", len(lib.Swatches), flagSwatches)
	fmt.Fprintf(cmd.OutOrStdout(), "Exported swatches to %s\n", flagOut)
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted, err := format.Format(content)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if formatted == content {
			log.Debugf("%s already formatted", path)
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
