package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"attrition/internal/synthetic"

	"github.com/spf13/cobra"
)

func main() {
	if err := newGenCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newGenCmd() *cobra.Command {
	cfg := synthetic.DefaultConfig()
	var out, format string

	cmd := &cobra.Command{
		Use:           "employees_gen",
		Short:         "Write a synthetic employee dataset with a known attrition signal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmtName := strings.ToLower(strings.TrimSpace(format))
			if fmtName == "" {
				switch strings.ToLower(filepath.Ext(out)) {
				case ".xlsx":
					fmtName = "xlsx"
				default:
					fmtName = "csv"
				}
			}

			ds, err := synthetic.Generate(cfg)
			if err != nil {
				return fmt.Errorf("error generating dataset: %w", err)
			}

			switch fmtName {
			case "csv":
				err = synthetic.WriteCSV(out, ds)
			case "xlsx":
				err = synthetic.WriteXLSX(out, ds)
			default:
				return fmt.Errorf("unsupported format: %s", fmtName)
			}
			if err != nil {
				return fmt.Errorf("error writing %s: %w", fmtName, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Dataset written: %s\n", out)
			fmt.Fprintf(cmd.OutOrStdout(), "Total Columns: %d | Total Rows: %d\n", len(ds.Headers), len(ds.Rows))
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&out, "out", "greendestination.csv", "output file path")
	fs.StringVar(&format, "format", "", "output format: csv or xlsx (default inferred from --out)")
	fs.IntVar(&cfg.Stayers, "stayers", cfg.Stayers, "number of employees who stayed")
	fs.IntVar(&cfg.Leavers, "leavers", cfg.Leavers, "number of employees who left")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed (deterministic)")
	return cmd
}
