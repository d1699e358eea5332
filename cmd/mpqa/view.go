package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/mpqa/document"
	"github.com/revelaction/mpqa/logger"
	"github.com/revelaction/mpqa/render"
)

// rowsFunc writes the rows of one view of doc.
type rowsFunc func(w render.RowWriter, doc document.Doc) (int, error)

func subjectivityRows(w render.RowWriter, doc document.Doc) (int, error) {
	return render.Write(w, doc.Subjectivity())
}

func attitudeTargetRows(w render.RowWriter, doc document.Doc) (int, error) {
	return render.Write(w, doc.AttitudeTargets())
}

func entitySentimentRows(w render.RowWriter, doc document.Doc) (int, error) {
	return render.Write(w, doc.EntitySentiments())
}

// viewCommand streams one view of every document, in corpus order.
func viewCommand(ui UI, name, usage string, rows rowsFunc) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "CORPUS",
		Action: func(cCtx *cli.Context) error {
			root, _, err := corpusArg(cCtx, 0)
			if err != nil {
				return err
			}

			w, err := render.NewRowWriter(cCtx.String("format"), ui.Out)
			if err != nil {
				return err
			}

			corpus, err := loadCorpus(cCtx, root, ui)
			if err != nil {
				return err
			}

			total := 0
			for _, doc := range corpus.Docs {
				n, err := rows(w, doc)
				if err != nil {
					return err
				}
				total += n
			}

			logger.ComponentLogger("cmd").Debugw("View written",
				logger.FieldCorpus, root, logger.FieldCount, total)
			return w.Flush()
		},
	}
}
