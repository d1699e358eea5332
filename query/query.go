// Package query is an interactive explorer over a loaded corpus.
package query

import (
	"fmt"
	"io"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/cockroachdb/errors"

	"github.com/revelaction/mpqa/document"
	"github.com/revelaction/mpqa/render"
)

const (
	ViewSubjectivity = "subjectivity"
	ViewTargets      = "targets"
	ViewEntities     = "entities"

	commandDocs = "docs"
	commandQuit = "quit"

	// formatTerminal renders rows with the colored terminal renderer.
	formatTerminal = "term"
)

var (
	ErrEmptyInput  = errors.New("empty input")
	ErrUnknownDoc  = errors.New("unknown document")
	ErrUnknownView = errors.New("unknown view")
)

func Views() []string {
	return []string{ViewSubjectivity, ViewTargets, ViewEntities}
}

type Handler struct {
	Library  document.Library
	Renderer *render.Renderer
	Out      io.Writer

	// Format is formatTerminal or one of render.SupportedFormats.
	Format string
}

func NewHandler(lib document.Library, r *render.Renderer, out io.Writer) *Handler {
	return &Handler{
		Library:  lib,
		Renderer: r,
		Out:      out,
		Format:   formatTerminal,
	}
}

// Command is one parsed line of input.
type Command struct {
	Doc  document.Doc
	View string
}

func (h *Handler) Run() error {
	fmt.Fprintln(h.Out, "🔑 Ctrl+X: Toggle prefix, Ctrl+F: next Format, 🔧 docs, quit")

	history := []string{}

	for {
		in := prompt.Input("      📖 ", h.completer,
			prompt.OptionTitle("mpqa query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.NextFormat()
					fmt.Fprintln(h.Out, "Format set to: "+h.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Fprintf(h.Out, "Prefix set to %t\n", h.Renderer.HasPrefix)
				}}),
		)

		history = append(history, in)

		quit, err := h.Exec(in)
		if quit {
			return nil
		}
		if err != nil && !errors.Is(err, ErrEmptyInput) {
			fmt.Fprintf(h.Out, "🔧 %v\n", err)
		}
	}
}

// Exec runs one line of input. quit is true for the quit command.
func (h *Handler) Exec(in string) (quit bool, err error) {
	switch strings.TrimSpace(in) {
	case commandQuit:
		return true, nil
	case commandDocs:
		for _, d := range h.Library {
			fmt.Fprintf(h.Out, "%4d %s\n", d.Id, d.Title())
		}
		return false, nil
	}

	cmd, err := h.parse(in)
	if err != nil {
		return false, err
	}

	return false, h.show(cmd)
}

func (h *Handler) show(cmd Command) error {
	if h.Format != formatTerminal {
		w, err := render.NewRowWriter(h.Format, h.Out)
		if err != nil {
			return err
		}

		switch cmd.View {
		case ViewSubjectivity:
			_, err = render.Write(w, cmd.Doc.Subjectivity())
		case ViewTargets:
			_, err = render.Write(w, cmd.Doc.AttitudeTargets())
		case ViewEntities:
			_, err = render.Write(w, cmd.Doc.EntitySentiments())
		}
		if err != nil {
			return err
		}
		return w.Flush()
	}

	switch cmd.View {
	case ViewSubjectivity:
		h.Renderer.Doc(cmd.Doc)
	case ViewTargets:
		i := 0
		for row := range cmd.Doc.AttitudeTargets() {
			h.Renderer.AttitudeTarget(i, row)
			i++
		}
	case ViewEntities:
		i := 0
		for row := range cmd.Doc.EntitySentiments() {
			h.Renderer.EntitySentiment(i, row)
			i++
		}
	}
	return nil
}

// NextFormat cycles through the terminal renderer and the row formats.
func (h *Handler) NextFormat() {
	formats := append([]string{formatTerminal}, render.SupportedFormats()...)
	for i, f := range formats {
		if f == h.Format {
			h.Format = formats[(i+1)%len(formats)]
			return
		}
	}
	h.Format = formatTerminal
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	return h.complete(in.TextBeforeCursor())
}

func (h *Handler) complete(befCursor string) []prompt.Suggest {
	s := []prompt.Suggest{}

	if len(befCursor) == 0 {
		return s
	}

	tokens := strings.Split(befCursor, " ")

	if len(tokens) == 1 {
		for _, cmd := range []string{commandDocs, commandQuit} {
			if strings.HasPrefix(cmd, tokens[0]) {
				s = append(s, prompt.Suggest{Text: cmd, Description: "🔧"})
			}
		}
		for _, d := range h.Library {
			if strings.HasPrefix(d.Title(), tokens[0]) || strings.HasPrefix(d.Name, tokens[0]) {
				s = append(s, prompt.Suggest{
					Text:        d.Title(),
					Description: fmt.Sprintf("📖 %d sentences", len(d.Sentences)),
				})
			}
		}
		return s
	}

	if len(tokens) == 2 {
		if _, ok := h.Library.Doc(tokens[0]); !ok {
			return s
		}
		for _, v := range Views() {
			if strings.HasPrefix(v, tokens[1]) {
				s = append(s, prompt.Suggest{Text: v})
			}
		}
	}

	return s
}

func (h *Handler) parse(in string) (Command, error) {
	tokens := strings.Fields(in)
	if len(tokens) == 0 {
		return Command{}, ErrEmptyInput
	}

	doc, ok := h.Library.Doc(tokens[0])
	if !ok {
		return Command{}, errors.Wrapf(ErrUnknownDoc, "%q", tokens[0])
	}

	cmd := Command{Doc: doc, View: ViewSubjectivity}
	if len(tokens) == 1 {
		return cmd, nil
	}

	if len(tokens) > 2 {
		return Command{}, errors.Newf("want <doc> [view], got %d words", len(tokens))
	}

	for _, v := range Views() {
		if v == tokens[1] {
			cmd.View = v
			return cmd, nil
		}
	}

	return Command{}, errors.Wrapf(ErrUnknownView, "%q", tokens[1])
}
