package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"catalogdiff/internal/pipeline"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var input, exclude, currency, out string

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Reshape one catalog into its template and write it as xlsx",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cur, err := ctx.currency(currency)
			if err != nil {
				return err
			}
			in, err := readInput(input)
			if err != nil {
				return err
			}

			var exclusions pipeline.ExclusionSet
			excl, err := readOptionalInput(exclude)
			if err != nil {
				return err
			}
			if excl != nil {
				exclusions, err = pipeline.LoadExclusions(excl.Data)
				if err != nil {
					ctx.logger.Error("ignoring exclusion file", "file", excl.Name, "error", err)
				}
			}

			cleaned, err := pipeline.CleanFile(in.Data, in.Format(), cur, exclusions)
			if err != nil {
				return &pipeline.FileError{File: in.Name, Err: err}
			}
			blob, err := pipeline.ExportXLSX(cleaned.Table)
			if err != nil {
				return err
			}
			if strings.TrimSpace(out) == "" {
				base := strings.TrimSuffix(in.Name, filepath.Ext(in.Name))
				out = filepath.Join(cfg.OutputDir, "Cleaned_"+base+".xlsx")
			}
			if err := writeOutput(out, blob); err != nil {
				return fmt.Errorf("write cleaned file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "template=%s rows=%d source_rows=%d wrote %s\n",
				cleaned.Template, cleaned.Table.Rows(), cleaned.SourceRows, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "Catalog to clean (.csv or .xlsx)")
	cmd.Flags().StringVar(&exclude, "exclude", "", "Spreadsheet of identifiers to drop")
	cmd.Flags().StringVar(&currency, "currency", "", "Currency written to the CUR column (default from config)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output xlsx path")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
