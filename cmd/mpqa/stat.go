package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/mpqa/stat"
)

func statCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "corpus statistics",
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

			hdl := stat.NewHandler()
			for _, doc := range corpus.Docs {
				hdl.Aggregate(doc)
			}

			s := hdl.Get()
			fmt.Fprintf(ui.Out, "Version %s\n", corpus.Version)
			fmt.Fprintf(ui.Out, "Num docs %d, num sentences %d, num annotations %d\n", s.NumDocs, s.NumSentences, s.NumAnnotations)
			fmt.Fprintf(ui.Out, "Sentences subjective %d, objective %d\n", s.NumSubjective, s.NumObjective)
			fmt.Fprintf(ui.Out, "Attitude targets %d, entity sentiments %d\n", s.NumAttitudeTargets, s.NumEntitySentiments)
			fmt.Fprintf(ui.Out, "Annotations without properties %d, without sentence %d\n", s.NumNoProperties, s.NumUnresolved)
			for _, kind := range s.Kinds() {
				fmt.Fprintf(ui.Out, "%8d %s\n", s.AnnotationsPerKind[kind], kind)
			}
			return nil
		},
	}
}
