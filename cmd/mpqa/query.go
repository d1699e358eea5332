package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/mpqa/query"
	"github.com/revelaction/mpqa/render"
)

func queryCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "explore the documents of the corpus interactively",
		ArgsUsage: "CORPUS",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-color", Usage: "do not color output"},
			&cli.BoolFlag{Name: "no-prefix", Usage: "do not number rows"},
		},
		Action: func(cCtx *cli.Context) error {
			root, _, err := corpusArg(cCtx, 0)
			if err != nil {
				return err
			}

			corpus, err := loadCorpus(cCtx, root, ui)
			if err != nil {
				return err
			}

			r := render.NewRenderer(ui.Out)
			r.HasColor = !cCtx.Bool("no-color")
			r.HasPrefix = !cCtx.Bool("no-prefix")

			return query.NewHandler(corpus.Docs, r, ui.Out).Run()
		},
	}
}
