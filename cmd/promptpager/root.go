package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/promptpager/config"
	"github.com/randalmurphal/promptpager/processor"
)

// app carries state shared by every subcommand.
type app struct {
	configFile string
	envFile    string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "promptpager",
		Short:         "Send sanitized prompts to Gemini and page the answer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file (.yaml, .yml or .toml)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "dotenv file (default .env when present)")

	root.AddCommand(
		newRunCmd(a),
		newStripCmd(a),
		newServeCmd(a),
		newSchemaCmd(),
	)
	return root
}

// load reads the configuration and installs the default logger.
func (a *app) load(logOut io.Writer) error {
	cfg, err := config.Load(config.LoadOptions{File: a.configFile, EnvFile: a.envFile})
	if err != nil {
		return err
	}
	if err := cfg.ValidateOffline(); err != nil {
		return err
	}
	a.cfg = cfg
	slog.SetDefault(cfg.Log.NewLogger(logOut))
	return nil
}

// readInput reads the prompt from path, or stdin for "" and "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read prompt: %w", err)
	}
	return string(data), nil
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// recoverable reports errors a caller can fix by changing the input.
func recoverable(err error) bool {
	var tooLarge *processor.InputTooLargeError
	var genErr *processor.GenerationFailedError
	return errors.As(err, &tooLarge) || errors.As(err, &genErr)
}
