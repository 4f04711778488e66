package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/custos-inspect/pkg/inspect"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cliFlags holds flag values shared by every command.
type cliFlags struct {
	field      string
	limit      int
	sheet      string
	rangeRef   string
	headerScan int
	format     string
	pretty     bool
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}
	var logger *zap.Logger

	rootCmd := &cobra.Command{
		Use:   "inspect [data.json|data.xlsx]",
		Short: "Report the record count and preview a field of a dataset",
		Long: `inspect loads a JSON array (or a workbook sheet) of records, prints how
many records it holds, then prints one field of the first few records.

With no arguments it reads ` + inspect.DefaultPath + ` and previews the
"` + inspect.DefaultField + `" field of the first ` + fmt.Sprint(inspect.DefaultLimit) + ` records.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if flags.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := buildOptions(cmd, flags, args, logger)
			if err != nil {
				return err
			}
			return inspect.Inspect(cmd.OutOrStdout(), opts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.field, "field", "f", inspect.DefaultField, "Record field to report")
	pf.StringVar(&flags.sheet, "sheet", "", "Workbook sheet to read (default: first sheet)")
	pf.StringVar(&flags.rangeRef, "range", "", "Workbook cell range to read, e.g. A1:F200 or 'Custos'!A1:F200")
	pf.IntVar(&flags.headerScan, "header-scan", 0, "Rows searched for the workbook header row (default 50)")
	pf.StringVar(&flags.format, "format", string(inspect.FormatText), "Output format: text, json")
	pf.BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
	pf.StringVar(&flags.configPath, "config", "", "YAML file supplying defaults for the flags above")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.Flags().IntVarP(&flags.limit, "limit", "n", inspect.DefaultLimit, "Number of records to preview")

	rootCmd.AddCommand(newSumCmd(flags, &logger))
	return rootCmd
}

// buildOptions merges the config file and flags into inspect.Options.
// Flags set on the command line take precedence over the config file.
func buildOptions(cmd *cobra.Command, flags *cliFlags, args []string, logger *zap.Logger) (inspect.Options, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := inspect.DefaultOptions()
	opts.Logger = logger

	if flags.configPath != "" {
		cfg, err := loadConfig(flags.configPath)
		if err != nil {
			return opts, err
		}
		cfg.apply(&opts)
		logger.Debug("config loaded", zap.String("path", flags.configPath))
	}

	changed := cmd.Flags().Changed
	if changed("field") {
		opts.Field = flags.field
	}
	if changed("limit") {
		opts.Limit = flags.limit
	}
	if changed("sheet") {
		opts.Sheet = flags.sheet
	}
	if changed("range") {
		opts.Range = flags.rangeRef
	}
	if changed("header-scan") {
		opts.HeaderScan = flags.headerScan
	}
	if changed("pretty") {
		opts.Pretty = flags.pretty
	}
	if changed("format") {
		opts.Format = inspect.Format(flags.format)
	}
	if len(args) == 1 {
		opts.Path = args[0]
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}
