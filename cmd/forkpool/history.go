package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kubev2v/forkpool/internal/models"
	"github.com/kubev2v/forkpool/internal/services"
)

func newHistoryCommand(a *app) *cobra.Command {
	var (
		workloads []string
		limit     uint64
		offset    uint64
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Store.DataFolder == "" {
				return fmt.Errorf("history needs --data-folder")
			}

			params := services.RunListParams{Limit: limit, Offset: offset}
			for _, w := range workloads {
				workload, err := models.ParseWorkload(w)
				if err != nil {
					return err
				}
				params.Workloads = append(params.Workloads, workload)
			}

			st, err := openStore(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			res, err := services.NewBenchService(nil, st, false).List(cmd.Context(), params)
			if err != nil {
				return err
			}
			printHistory(cmd.OutOrStdout(), res)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&workloads, "workload", nil, "only show these workloads")
	flags.Uint64Var(&limit, "limit", 20, "maximum number of runs")
	flags.Uint64Var(&offset, "offset", 0, "number of runs to skip")

	return cmd
}

func printHistory(w io.Writer, res *services.RunListResult) {
	header := color.New(color.Bold).SprintFunc()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header("ID\tCREATED\tWORKLOAD\tSIZE\tWORKERS\tDURATION\tTASKS/S\tSTEALS"))
	for _, r := range res.Runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%.0f\t%d\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Workload, r.Size, r.Workers, r.Duration, r.TasksPerSecond(), r.Steals)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d of %d runs\n", len(res.Runs), res.Total)
}
