package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func versionCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print the version",
		Action: func(cCtx *cli.Context) error {
			_, err := fmt.Fprintf(ui.Out, "mpqa version %s (commit: %s)\n", BuildTag, BuildCommit)
			return err
		},
	}
}
