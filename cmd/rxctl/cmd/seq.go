package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CrisisTextLine/rx"
)

func newSeqCommand(configPath *string) *cobra.Command {
	var values string

	c := &cobra.Command{
		Use:   "seq",
		Short: "Print a comma-separated sequence of integers through rx.Seq",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := rx.LoadConfig(*configPath); err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			parts := strings.Split(values, ",")
			ints := make([]int, 0, len(parts))
			for _, p := range parts {
				p = strings.TrimSpace(p)
				if p == "" {
					continue
				}
				n, err := strconv.Atoi(p)
				if err != nil {
					return fmt.Errorf("parse %q: %w", p, err)
				}
				ints = append(ints, n)
			}

			rx.Run(rx.Seq(ints), func(e rx.Event[int]) rx.RxResult {
				switch e.Kind() {
				case rx.KindNext:
					fmt.Fprintf(cmd.OutOrStdout(), "%d\n", e.Value())
				case rx.KindError:
					fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", e.Cause())
				}
				return rx.Continue
			})
			return nil
		},
	}

	c.Flags().StringVar(&values, "values", "1,2,3", "comma-separated integers")
	return c
}
