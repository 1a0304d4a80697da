package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"catalogdiff/internal/pipeline"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the detected header, key column and template of a catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(input)
			if err != nil {
				return err
			}
			info, err := pipeline.Inspect(in.Data, in.Format())
			if err != nil {
				return &pipeline.FileError{File: in.Name, Err: err}
			}

			quantity := info.QuantityColumn
			if quantity == "" {
				quantity = "-"
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Field", "Value"},
				[][]string{
					{"File", in.Name},
					{"Format", string(in.Format())},
					{"Header row", fmt.Sprint(info.HeaderRow + 1)},
					{"Identifier", info.IdentifierColumn},
					{"Quantity", quantity},
					{"Template", info.Template.String()},
					{"Data rows", fmt.Sprint(info.Rows)},
					{"Columns", strings.Join(info.Columns, ", ")},
				},
				nil,
			))
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "Catalog to inspect (.csv or .xlsx)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
