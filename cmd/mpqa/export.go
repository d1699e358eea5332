package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"

	"github.com/revelaction/mpqa/storage/sqlite/zombiezen"
)

func exportCommand(ui UI) *cli.Command {
	flags := []cli.Flag{
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "db",
			Usage:   "SQLite database `FILE`",
			EnvVars: []string{"MPQA_DB"},
		}),
	}

	return &cli.Command{
		Name:      "export",
		Usage:     "store the three views of every document in a SQLite database",
		ArgsUsage: "CORPUS",
		Flags:     flags,
		Before:    altsrc.InitInputSourceWithContext(flags, altsrc.NewTomlSourceFromFlagFunc("config")),
		Action: func(cCtx *cli.Context) error {
			dbPath := cCtx.String("db")
			if dbPath == "" {
				return errors.New("--db is required")
			}

			root, _, err := corpusArg(cCtx, 0)
			if err != nil {
				return err
			}

			corpus, err := loadCorpus(cCtx, root, ui)
			if err != nil {
				return err
			}

			pool, err := zombiezen.NewPool(dbPath)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := zombiezen.CreateSchemas(pool, zombiezen.ViewsSchema); err != nil {
				return err
			}

			dst := zombiezen.NewViewStore(pool)

			incr := func() {}
			if !cCtx.Bool("quiet") && len(corpus.Docs) > 0 {
				p, bar := newBar(ui, len(corpus.Docs))
				defer p.Stop()
				incr = func() { bar.Incr() }
			}

			for _, doc := range corpus.Docs {
				if err := dst.Write(corpus.Version, doc); err != nil {
					return errors.Wrapf(err, "export %s", doc.Title())
				}
				incr()
			}

			fmt.Fprintf(ui.Out, "Exported %d docs from %s to %s\n", len(corpus.Docs), root, dbPath)
			return nil
		},
	}
}
