// Package tui renders assistant output and runs the interactive loop, either
// as a Bubble Tea program on a terminal or as a plain line loop.
package tui

import (
	"context"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// REPL runs an interactive assistant session.
type REPL interface {
	Run(ctx context.Context) error
}

// Options configures REPL creation.
type Options struct {
	In         io.Reader    // Input source (default: os.Stdin).
	Out        io.Writer    // Output destination (default: os.Stdout).
	ForcePlain bool         // Force the plain loop even if attached to a TTY.
	Greeting   string       // Printed once at start.
	Logger     *slog.Logger // Session diagnostics (default: discard).
}

// NewREPL returns a Bubble Tea REPL when both ends are terminals, or a plain
// line loop otherwise. ForcePlain overrides TTY detection. Colors are used
// whenever the output is a terminal.
func NewREPL(exec Executor, opts Options) REPL {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	theme := ThemeFor(opts.Out)
	if opts.ForcePlain || !isTTY(opts.In) || !isTTY(opts.Out) {
		return &PlainREPL{exec: exec, in: opts.In, w: opts.Out, theme: theme, greeting: opts.Greeting}
	}
	return &TUIREPL{exec: exec, in: opts.In, w: opts.Out, theme: theme, greeting: opts.Greeting, logger: opts.Logger}
}

// ThemeFor returns DefaultTheme for terminals and PlainTheme otherwise.
func ThemeFor(w any) Theme {
	if isTTY(w) {
		return DefaultTheme()
	}
	return PlainTheme()
}

// isTTY reports whether v is an *os.File connected to a terminal.
func isTTY(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TUIREPL runs the assistant as a Bubble Tea program.
// Falls back to PlainREPL if the program fails to start.
type TUIREPL struct {
	exec     Executor
	in       io.Reader
	w        io.Writer
	theme    Theme
	greeting string
	logger   *slog.Logger
}

// Run starts the Bubble Tea program and blocks until it quits.
func (r *TUIREPL) Run(ctx context.Context) error {
	model := NewModel(r.exec, WithTheme(r.theme), WithGreeting(r.greeting))
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(r.in),
		tea.WithOutput(r.w),
	)

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		r.logger.Warn("terminal UI failed, using plain loop", "err", err)
		return r.fallback().Run(ctx)
	}
	r.finish(final)
	return nil
}

// fallback returns the plain loop used when the program cannot start.
func (r *TUIREPL) fallback() *PlainREPL {
	return &PlainREPL{exec: r.exec, in: r.in, w: r.w, theme: r.theme, greeting: r.greeting}
}

// finish logs how the session ended: an exit command, or the quit key.
func (r *TUIREPL) finish(final tea.Model) {
	if m, ok := final.(Model); ok && !m.Exited() {
		r.logger.Info("session aborted")
		return
	}
	r.logger.Debug("session ended")
}
