package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/promptpager/processor"
	"github.com/randalmurphal/promptpager/watch"
)

func newRunCmd(a *app) *cobra.Command {
	var watchFile bool

	cmd := &cobra.Command{
		Use:   "run [file|-]",
		Short: "Process a prompt and print the paged answer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := argOrEmpty(args)
			if watchFile && (path == "" || path == "-") {
				return errors.New("--watch needs a file argument")
			}

			p, err := a.cfg.Build()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if watchFile {
				return watch.File(ctx, path, func(ctx context.Context, content string) error {
					err := processAndPrint(ctx, cmd.OutOrStdout(), p, content)
					if err != nil && recoverable(err) {
						slog.Warn("prompt not processed", slog.String("path", path), slog.Any("error", err))
						return nil
					}
					return err
				})
			}

			raw, err := readInput(cmd, path)
			if err != nil {
				return err
			}
			return processAndPrint(ctx, cmd.OutOrStdout(), p, raw)
		},
	}

	cmd.Flags().BoolVarP(&watchFile, "watch", "w", false, "re-run whenever the file changes")
	return cmd
}

func processAndPrint(ctx context.Context, w io.Writer, p *processor.Processor, raw string) error {
	pages, err := p.Process(ctx, raw)
	if err != nil {
		return err
	}
	return printPages(w, pages)
}

func printPages(w io.Writer, pages []string) error {
	for i, page := range pages {
		if _, err := fmt.Fprintf(w, "--- page %d/%d ---\n%s\n", i+1, len(pages), page); err != nil {
			return err
		}
	}
	return nil
}
