package main

import (
	"context"
	"sync"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/mpqa/document"
	"github.com/revelaction/mpqa/storage/filesystem"
)

// corpusArg returns the corpus root, from the first argument or --corpus.
// rest holds the remaining arguments.
func corpusArg(cCtx *cli.Context, want int) (root string, rest []string, err error) {
	args := cCtx.Args().Slice()
	if len(args) > want {
		return args[0], args[1:], nil
	}

	root = cCtx.String("corpus")
	if root == "" {
		return "", nil, errNoCorpus
	}
	return root, args, nil
}

// loadCorpus reads every document of root, drawing a progress bar on ui.Err
// unless --quiet.
func loadCorpus(cCtx *cli.Context, root string, ui UI) (document.Corpus, error) {
	store, err := filesystem.NewCorpusStore(root)
	if err != nil {
		return document.Corpus{}, err
	}
	store.WithWorkers(cCtx.Int("workers")).WithParent(cCtx.String("parent"))

	ctx := cCtx.Context
	if ctx == nil {
		ctx = context.Background()
	}

	if cCtx.Bool("quiet") || len(store.Entries()) == 0 {
		return store.Load(ctx, nil)
	}

	p, bar := newBar(ui, len(store.Entries()))
	defer p.Stop()

	var mu sync.Mutex
	current := ""
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		mu.Lock()
		defer mu.Unlock()
		return current
	})

	return store.Load(ctx, func(total int, name string) {
		mu.Lock()
		current = name
		mu.Unlock()
		bar.Incr()
	})
}

func newBar(ui UI, total int) (*uiprogress.Progress, *uiprogress.Bar) {
	p := uiprogress.New()
	p.SetOut(ui.Err)
	p.Start()

	bar := p.AddBar(total)
	bar.AppendCompleted()
	bar.PrependElapsed()
	return p, bar
}
