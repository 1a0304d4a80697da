package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"catalogdiff/internal/pipeline"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var file1, file2, exclude, currency, out string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Clean two catalogs and write new/inactive items as a zip bundle",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cur, err := ctx.currency(currency)
			if err != nil {
				return err
			}

			in1, err := readInput(file1)
			if err != nil {
				return err
			}
			in2, err := readInput(file2)
			if err != nil {
				return err
			}
			excl, err := readOptionalInput(exclude)
			if err != nil {
				return err
			}

			db, err := ctx.openStore()
			if err != nil {
				return err
			}
			var store pipeline.RunStore
			if db != nil {
				defer db.Close()
				store = db
			}

			svc := pipeline.NewService(store, ctx.logger)
			res, err := svc.Run(pipeline.RunInput{File1: in1, File2: in2, Exclusions: excl, Currency: cur})
			if err != nil {
				return err
			}

			buf := bytes.NewBuffer(nil)
			if err := pipeline.WriteZip(buf, res.Files()); err != nil {
				return err
			}
			if strings.TrimSpace(out) == "" {
				out = filepath.Join(cfg.OutputDir, pipeline.BundleName)
			}
			if err := writeOutput(out, buf.Bytes()); err != nil {
				return fmt.Errorf("write bundle: %w", err)
			}

			stdout := cmd.OutOrStdout()
			fmt.Fprintln(stdout, renderTable(
				[]string{"File", "Template", "Key", "Rows"},
				[][]string{
					{in1.Name, res.Cleaned1.Template.String(), res.Cleaned1.Template.Identifier(), fmt.Sprint(res.Cleaned1.Table.Rows())},
					{in2.Name, res.Cleaned2.Template.String(), res.Cleaned2.Template.Identifier(), fmt.Sprint(res.Cleaned2.Table.Rows())},
				},
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
			))
			fmt.Fprintf(stdout, "new=%d inactive=%d excluded=%d run=%s\n",
				res.Comparison.NewItems.Rows(), res.Comparison.InactiveItems.Rows(), res.Excluded, res.RunID)
			fmt.Fprintf(stdout, "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&file1, "file1", "", "Previous catalog (.csv or .xlsx)")
	cmd.Flags().StringVar(&file2, "file2", "", "Current catalog (.csv or .xlsx)")
	cmd.Flags().StringVar(&exclude, "exclude", "", "Spreadsheet of identifiers to drop")
	cmd.Flags().StringVar(&currency, "currency", "", "Currency written to the CUR column (default from config)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output zip path")
	_ = cmd.MarkFlagRequired("file1")
	_ = cmd.MarkFlagRequired("file2")
	return cmd
}
