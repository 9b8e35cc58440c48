package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CrisisTextLine/rx"
	"github.com/CrisisTextLine/rx/modules/scheduler"
)

func newCronCommand(configPath *string) *cobra.Command {
	var spec string
	var count int

	c := &cobra.Command{
		Use:   "cron",
		Short: "Print tick indices from rx.Cron until --count ticks arrive",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := rx.LoadConfig(*configPath); err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			adapter := scheduler.NewCronAdapter()
			defer adapter.Stop()

			pipeline := rx.Take(rx.Cron(spec), count)
			done := make(chan struct{})
			rx.Run(pipeline, func(e rx.Event[uint64]) rx.RxResult {
				switch e.Kind() {
				case rx.KindNext:
					fmt.Fprintf(cmd.OutOrStdout(), "tick %d\n", e.Value())
					return rx.Continue
				case rx.KindError:
					fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", e.Cause())
					close(done)
					return rx.Stop
				default:
					close(done)
					return rx.Stop
				}
			}, rx.WithScheduler(adapter))
			<-done
			return nil
		},
	}

	c.Flags().StringVar(&spec, "spec", "@every 1s", "cron expression (robfig/cron syntax, seconds supported)")
	c.Flags().IntVar(&count, "count", 5, "number of ticks to print before stopping")
	return c
}
