package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/smileynet/addressbook/internal/command"
)

// PlainREPL reads commands line by line and writes rendered output. It is
// used when stdin or stdout is not a terminal.
type PlainREPL struct {
	exec     Executor
	in       io.Reader
	w        io.Writer
	theme    Theme
	greeting string
}

// Run loops until an exit command, end of input or context cancellation.
func (p *PlainREPL) Run(ctx context.Context) error {
	if p.greeting != "" {
		_, _ = fmt.Fprintln(p.w, strings.TrimRight(p.greeting, "\n"))
	}

	lines := bufio.NewScanner(p.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, _ = fmt.Fprint(p.w, Prompt)
		if !lines.Scan() {
			_, _ = fmt.Fprintln(p.w)
			return lines.Err()
		}

		reply, err := p.exec.Execute(lines.Text())
		if err != nil {
			_, _ = fmt.Fprintln(p.w, p.theme.RenderError(err))
			continue
		}
		if out := p.theme.Render(reply); out != "" {
			_, _ = fmt.Fprintln(p.w, out)
		}
		if reply.Kind == command.KindExit {
			return nil
		}
	}
}
