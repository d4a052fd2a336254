// Package command turns assistant input lines into book and record
// operations. It returns typed replies and errors and never prints.
package command

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/smileynet/addressbook/internal/book"
	"github.com/smileynet/addressbook/internal/contact"
)

// Sentinel errors for caller-checkable conditions.
var (
	ErrUnknownCommand = errors.New("command: unknown command")
	ErrUsage          = errors.New("command: missing arguments")
)

// UsageError reports a command invoked with too few arguments.
type UsageError struct {
	Command string
	Usage   string // e.g. "add <name> <phone>"
}

func (e *UsageError) Error() string {
	return "usage: " + e.Usage
}

// Is reports whether target is ErrUsage.
func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// Kind classifies a Reply for rendering.
type Kind int

const (
	KindNone      Kind = iota // Nothing to show (blank input).
	KindMessage               // Informational text.
	KindSuccess               // A mutation succeeded.
	KindEmpty                 // A query matched nothing.
	KindContact               // A single record.
	KindContacts              // Every record.
	KindBirthday              // One contact's birthday.
	KindBirthdays             // Upcoming birthdays.
	KindHelp                  // Command reference.
	KindExit                  // The session should end.
)

// Reply is the outcome of a successful command.
type Reply struct {
	Kind     Kind
	Message  string
	Records  []*contact.Record
	Birthday contact.Birthday
	Upcoming []book.UpcomingBirthday
	Days     int
	Commands []Usage
	Changed  bool // The book was mutated and should be persisted.
}

// Usage documents one command for help output.
type Usage struct {
	Name    string
	Aliases []string
	Args    string
	Summary string
}

// Synopsis returns "name args", e.g. "add <name> <phone>".
func (u Usage) Synopsis() string {
	if u.Args == "" {
		return u.Name
	}
	return u.Name + " " + u.Args
}

type handler func(d *Dispatcher, args []string) (Reply, error)

type entry struct {
	Usage
	minArgs int
	run     handler
}

// Dispatcher executes commands against a single book.
type Dispatcher struct {
	book        *book.Book
	defaultDays int
	logger      *slog.Logger
	entries     []*entry
	byName      map[string]*entry
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithDefaultDays sets the window used by "birthdays" without an argument.
func WithDefaultDays(days int) Option {
	return func(d *Dispatcher) { d.defaultDays = days }
}

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// New creates a Dispatcher operating on b.
func New(b *book.Book, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		book:        b,
		defaultDays: book.DefaultUpcomingDays,
		logger:      slog.New(slog.DiscardHandler),
		entries:     commands(),
		byName:      make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(d)
	}
	for _, e := range d.entries {
		d.byName[e.Name] = e
		for _, a := range e.Aliases {
			d.byName[a] = e
		}
	}
	return d
}

// Book returns the book the dispatcher mutates.
func (d *Dispatcher) Book() *book.Book { return d.book }

// Usages returns the command reference in display order.
func (d *Dispatcher) Usages() []Usage {
	out := make([]Usage, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.Usage
	}
	return out
}

// Parse splits an input line into a lower-cased command name and its
// whitespace-separated arguments.
func Parse(line string) (name string, args []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Execute parses line and dispatches it. Blank input yields KindNone.
func (d *Dispatcher) Execute(line string) (Reply, error) {
	name, args := Parse(line)
	if name == "" {
		return Reply{Kind: KindNone}, nil
	}
	return d.Dispatch(name, args)
}

// Dispatch runs the named command (or alias) with args.
func (d *Dispatcher) Dispatch(name string, args []string) (Reply, error) {
	e, ok := d.byName[strings.ToLower(name)]
	if !ok {
		d.logger.Debug("unknown command", "command", name)
		return Reply{}, fmt.Errorf("%w %q", ErrUnknownCommand, name)
	}
	if len(args) < e.minArgs {
		return Reply{}, &UsageError{Command: e.Name, Usage: e.Synopsis()}
	}

	d.logger.Debug("dispatch", "command", e.Name, "args", len(args))
	reply, err := e.run(d, args)
	if err != nil {
		d.logger.Debug("command failed", "command", e.Name, "err", err)
		return Reply{}, err
	}
	return reply, nil
}

// record looks up name or reports it missing.
func (d *Dispatcher) record(name string) (*contact.Record, error) {
	r, ok := d.book.Find(name)
	if !ok {
		return nil, &contact.NotFoundError{Kind: "contact", Key: name}
	}
	return r, nil
}
