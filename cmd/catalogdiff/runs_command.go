package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"catalogdiff/internal"
	"catalogdiff/internal/storage"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs [run-id]",
		Short: "List recent comparison runs, or show one run in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = cfg.RunsLimit
			}

			db, err := storage.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open run ledger: %w", err)
			}
			defer db.Close()

			stdout := cmd.OutOrStdout()
			if len(args) == 1 {
				run, err := db.GetRun(args[0])
				if err != nil {
					return err
				}
				if run == nil {
					return fmt.Errorf("run %s not found", args[0])
				}
				fmt.Fprintln(stdout, renderRunDetail(*run))
				return nil
			}

			runs, err := db.ListRuns(limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(stdout, "No runs recorded")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, r := range runs {
				rows = append(rows, []string{
					r.CreatedAt,
					r.File1,
					r.File2,
					r.Currency,
					string(r.Status),
					fmt.Sprint(r.NewItems),
					fmt.Sprint(r.InactiveItems),
					fmt.Sprint(r.DurationMs),
					runNote(r),
				})
			}
			fmt.Fprintln(stdout, renderTable(
				[]string{"Created", "File 1", "File 2", "Cur", "Status", "New", "Inactive", "ms", "Note"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of runs to show (default from config)")
	return cmd
}

func runNote(r internal.RunRecord) string {
	if r.Error != nil {
		return *r.Error
	}
	if r.Template1 != nil && r.Template2 != nil && *r.Template1 != *r.Template2 {
		return fmt.Sprintf("templates %s/%s", *r.Template1, *r.Template2)
	}
	return ""
}

func renderRunDetail(r internal.RunRecord) string {
	exclusion, errText := "-", "-"
	if r.ExclusionFile != nil {
		exclusion = *r.ExclusionFile
	}
	if r.Error != nil {
		errText = *r.Error
	}
	return renderTable(
		[]string{"Field", "Value"},
		[][]string{
			{"Run", r.ID},
			{"Created", r.CreatedAt},
			{"Status", string(r.Status)},
			{"File 1", fmt.Sprintf("%s (%s, %d rows)", r.File1, templateLabel(r.Template1), r.Rows1)},
			{"File 2", fmt.Sprintf("%s (%s, %d rows)", r.File2, templateLabel(r.Template2), r.Rows2)},
			{"Exclusions", fmt.Sprintf("%s (%d ids)", exclusion, r.Excluded)},
			{"Currency", r.Currency},
			{"New items", fmt.Sprint(r.NewItems)},
			{"Inactive items", fmt.Sprint(r.InactiveItems)},
			{"Duration", fmt.Sprintf("%dms", r.DurationMs)},
			{"Error", errText},
		},
		nil,
	)
}

func templateLabel(t *internal.TemplateName) string {
	if t == nil {
		return "-"
	}
	return string(*t)
}
