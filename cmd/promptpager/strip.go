package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/promptpager/processor"
)

func newStripCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strip [file|-]",
		Short: "Print the sanitized prompt and its token estimate without calling the provider",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, argOrEmpty(args))
			if err != nil {
				return err
			}

			limits := a.cfg.ProcessorConfig().Limits
			sanitized, err := processor.Sanitize(raw, limits)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, sanitized)
			fmt.Fprintf(out, "estimated tokens: %d (limit %d)\n", limits.Counter().Count(sanitized), limits.Input)
			return err
		},
	}
}
