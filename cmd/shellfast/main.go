package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Aurum-R/Shellfast/internal/cli"
	"github.com/Aurum-R/Shellfast/pkg/config"
	"github.com/Aurum-R/Shellfast/pkg/output"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, cli.ErrQuietFailure) {
			renderer := output.NewRenderer(config.Default().Output.Color)
			fmt.Fprintln(os.Stderr, renderer.RenderError(err))
		}
		os.Exit(1)
	}
}
