package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

const complete = `#! /bin/bash

_mpqa_autocomplete() {
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"

    # files for the corpus argument and flag values
    if [[ "$cur" == */* || "$cur" == .* ]]; then
        COMPREPLY=( $(compgen -f -- "$cur") )
        return 0
    fi

    opts=$( "${COMP_WORDS[@]:0:$COMP_CWORD}" --generate-bash-completion )
    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -o default -F _mpqa_autocomplete mpqa
`

func bashCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "bash",
		Usage: "print a bash completion script, use with: source <(mpqa bash)",
		Action: func(cCtx *cli.Context) error {
			_, err := fmt.Fprint(ui.Out, complete)
			return err
		},
	}
}
