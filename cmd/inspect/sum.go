package main

import (
	"github.com/spf13/cobra"
	"github.com/ukaji3/custos-inspect/pkg/inspect"
	"go.uber.org/zap"
)

func newSumCmd(flags *cliFlags, logger **zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "sum [data.json|data.xlsx]",
		Short: "Total a numeric field across every record",
		Long: `sum adds up the field across all records. Numbers are taken as-is;
strings are read in Brazilian notation ("R$ 1.234,56" is 1234.56).
Records without a numeric value are reported as skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := buildOptions(cmd, flags, args, *logger)
			if err != nil {
				return err
			}

			ds, err := inspect.Load(opts.Path, opts)
			if err != nil {
				return err
			}
			return inspect.WriteSummary(cmd.OutOrStdout(), inspect.Summarize(ds, opts.Field), opts)
		},
	}
}
