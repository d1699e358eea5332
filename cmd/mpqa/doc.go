package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/mpqa/render"
)

func docsCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "list the documents of the corpus",
		ArgsUsage: "CORPUS",
		Action: func(cCtx *cli.Context) error {
			root, _, err := corpusArg(cCtx, 0)
			if err != nil {
				return err
			}

			corpus, err := loadCorpus(cCtx, root, ui)
			if err != nil {
				return err
			}

			for _, d := range corpus.Docs {
				fmt.Fprintf(ui.Out, "📖 %d %s %d %d\n", d.Id, d.Title(), len(d.Sentences), len(d.Annotations))
			}
			return nil
		},
	}
}

func docCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "doc",
		Usage:     "print the sentences of a document with their label",
		ArgsUsage: "CORPUS PARENT/NAME",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-color", Usage: "do not color labels"},
			&cli.BoolFlag{Name: "no-prefix", Usage: "do not number sentences"},
		},
		Action: func(cCtx *cli.Context) error {
			root, rest, err := corpusArg(cCtx, 1)
			if err != nil {
				return err
			}
			if len(rest) != 1 {
				return errors.New("want one document PARENT/NAME")
			}

			corpus, err := loadCorpus(cCtx, root, ui)
			if err != nil {
				return err
			}

			doc, ok := corpus.Docs.Doc(rest[0])
			if !ok {
				return errors.Newf("document %q not found", rest[0])
			}

			r := render.NewRenderer(ui.Out)
			r.HasColor = !cCtx.Bool("no-color")
			r.HasPrefix = !cCtx.Bool("no-prefix")
			r.Doc(doc)
			return nil
		},
	}
}
