package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"

	"github.com/revelaction/mpqa/logger"
	"github.com/revelaction/mpqa/render"
)

// Set at build time with -ldflags "-X main.BuildTag=... -X main.BuildCommit=..."
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

var errNoCorpus = errors.New("no corpus given: pass CORPUS or set MPQA_CORPUS")

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "mpqa: %v\n", err)
}

// globalFlags can also be set from the --config TOML file.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "TOML file with default flag values",
			EnvVars: []string{"MPQA_CONFIG"},
		},
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "corpus",
			Usage:   "corpus root, used when CORPUS is not given",
			EnvVars: []string{"MPQA_CORPUS"},
		}),
		altsrc.NewIntFlag(&cli.IntFlag{
			Name:    "workers",
			Usage:   "documents loaded in parallel",
			Value:   runtime.NumCPU(),
			EnvVars: []string{"MPQA_WORKERS"},
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "parent",
			Usage:   "only load documents whose parent directory contains `SUBSTR`",
			EnvVars: []string{"MPQA_PARENT"},
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "format",
			Usage:   "view row format: tsv or json",
			Value:   render.DefaultFormat,
			EnvVars: []string{"MPQA_FORMAT"},
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "do not draw progress bars",
			EnvVars: []string{"MPQA_QUIET"},
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "debug logging",
			EnvVars: []string{"MPQA_VERBOSE"},
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:    "log-json",
			Usage:   "log as JSON lines",
			EnvVars: []string{"MPQA_LOG_JSON"},
		}),
	}
}

func newApp(ui UI) *cli.App {
	flags := globalFlags()
	loadConfig := altsrc.InitInputSourceWithContext(flags, altsrc.NewTomlSourceFromFlagFunc("config"))

	return &cli.App{
		Name:                 "mpqa",
		Usage:                "derive opinion views from an MPQA annotated corpus",
		Version:              BuildTag,
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		EnableBashCompletion: true,
		HideVersion:          true,
		Flags:                flags,
		Before: func(cCtx *cli.Context) error {
			if err := loadConfig(cCtx); err != nil {
				return errors.Wrap(err, "config")
			}
			return logger.Initialize(cCtx.Bool("verbose"), cCtx.Bool("log-json"))
		},
		After: func(cCtx *cli.Context) error {
			logger.Sync()
			return nil
		},
		Commands: []*cli.Command{
			viewCommand(ui, "sentence-subjectivity", "sentence text and subjective/objective label", subjectivityRows),
			viewCommand(ui, "targeted-sentiment", "attitudes with their targets and enclosing sentence", attitudeTargetRows),
			viewCommand(ui, "entity-sentiment", "entities that are the target of a sentiment", entitySentimentRows),
			docsCommand(ui),
			docCommand(ui),
			statCommand(ui),
			exportCommand(ui),
			queryCommand(ui),
			bashCommand(ui),
			versionCommand(ui),
		},
	}
}
