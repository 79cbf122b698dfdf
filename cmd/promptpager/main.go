// Command promptpager strips markdown from a prompt, sends it to a hosted
// generation API and prints the result in token-bounded pages.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("promptpager failed", slog.Any("error", err))
		os.Exit(1)
	}
}
