package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kubev2v/forkpool/internal/models"
	"github.com/kubev2v/forkpool/internal/services"
	"github.com/kubev2v/forkpool/internal/store"
)

func newRunCommand(a *app) *cobra.Command {
	b := &a.cfg.Bench

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a workload on a fresh scheduler and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			workload, err := models.ParseWorkload(b.Workload)
			if err != nil {
				return err
			}
			params := models.RunParams{Workload: workload, Size: b.Depth, Timeout: b.Timeout}
			if workload == models.WorkloadSpray {
				params.Size = b.Tasks
			}

			ctx := cmd.Context()

			var st *store.Store
			if b.Record {
				if st, err = openStore(ctx, a.cfg); err != nil {
					return err
				}
				defer st.Close()
			}

			sched := newScheduler(a.cfg)
			defer sched.Close()

			svc := services.NewBenchService(sched, st, b.Record)
			for i := range b.Runs {
				run, err := svc.Run(ctx, params)
				if err != nil {
					return fmt.Errorf("run %d/%d: %w", i+1, b.Runs, err)
				}
				printRun(cmd.OutOrStdout(), i+1, run)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&b.Workload, "workload", b.Workload, `workload: "fib" or "spray"`)
	flags.IntVar(&b.Depth, "depth", b.Depth, "fib argument")
	flags.IntVar(&b.Tasks, "tasks", b.Tasks, "number of tasks sprayed from outside the pool")
	flags.IntVar(&b.Runs, "runs", b.Runs, "number of repetitions")
	flags.DurationVar(&b.Timeout, "timeout", b.Timeout, "upper bound for a single run")
	flags.BoolVar(&b.Record, "record", b.Record, "save runs to the history")

	return cmd
}

func printRun(w io.Writer, n int, run *models.Run) {
	label := color.New(color.FgCyan, color.Bold).SprintFunc()
	value := color.New(color.FgGreen).SprintFunc()
	warn := color.New(color.FgRed, color.Bold).SprintFunc()

	fmt.Fprintf(w, "%s %d  %s\n", label("run"), n, run.ID)
	fmt.Fprintf(w, "  %-12s %s(%d) = %s\n", label("workload"), run.Workload, run.Size, value(run.Value))
	fmt.Fprintf(w, "  %-12s %s on %d workers\n", label("duration"), value(run.Duration), run.Workers)
	fmt.Fprintf(w, "  %-12s %s (%.0f/s)\n", label("tasks"), value(run.Tasks), run.TasksPerSecond())
	fmt.Fprintf(w, "  %-12s %s, %d failed rounds, %d sleeps\n", label("steals"), value(run.Steals), run.FailedStealRounds, run.Sleeps)
	if run.Violations > 0 {
		fmt.Fprintf(w, "  %-12s %s\n", label("violations"), warn(run.Violations))
	}
}
