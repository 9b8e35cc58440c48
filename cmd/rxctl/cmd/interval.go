package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/CrisisTextLine/rx"
)

func newIntervalCommand(configPath *string) *cobra.Command {
	var period time.Duration
	var count int

	c := &cobra.Command{
		Use:   "interval",
		Short: "Print tick indices from rx.Interval until --count ticks arrive",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := rx.LoadConfig(*configPath); err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			pipeline := rx.Take(rx.Interval(period), count)
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
			})
			<-done
			return nil
		},
	}

	c.Flags().DurationVar(&period, "period", time.Second, "tick period")
	c.Flags().IntVar(&count, "count", 5, "number of ticks to print before stopping")
	return c
}
