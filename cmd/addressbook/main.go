package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/smileynet/addressbook"
	"github.com/smileynet/addressbook/internal/book"
	"github.com/smileynet/addressbook/internal/command"
	"github.com/smileynet/addressbook/internal/config"
	"github.com/smileynet/addressbook/internal/contact"
	"github.com/smileynet/addressbook/internal/logging"
	"github.com/smileynet/addressbook/internal/store"
	"github.com/smileynet/addressbook/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Globals are flags shared by every command.
type Globals struct {
	Config    string `help:"Project config file." default:".addressbook/config.yaml"`
	Book      string `help:"Address book file (overrides storage.path)."`
	NoTUI     bool   `help:"Force the plain line loop even if attached to a TTY." default:"false"`
	LogLevel  string `help:"Log level: debug, info, warn or error."`
	LogFormat string `help:"Log format: text or json."`
	LogFile   string `help:"Append logs to this file instead of stderr."`
}

// CLI is the top-level command structure for addressbook.
type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Show version." short:"V"`

	Repl         ReplCmd         `cmd:"" default:"1" help:"Start the interactive assistant."`
	Add          AddCmd          `cmd:"" help:"Add a contact, or a phone to an existing contact."`
	Change       ChangeCmd       `cmd:"" help:"Change an existing phone number."`
	Phone        PhoneCmd        `cmd:"" help:"Show contact details by name."`
	All          AllCmd          `cmd:"" help:"Show all contacts."`
	AddBirthday  AddBirthdayCmd  `cmd:"" name:"add-birthday" help:"Add a birthday to a contact."`
	ShowBirthday ShowBirthdayCmd `cmd:"" name:"show-birthday" help:"Show the birthday of a contact."`
	Birthdays    BirthdaysCmd    `cmd:"" help:"Show birthdays in the upcoming days."`
	Delete       DeleteCmd       `cmd:"" help:"Delete a contact."`
	RemovePhone  RemovePhoneCmd  `cmd:"" name:"remove-phone" help:"Remove a phone number from a contact."`
}

// --- Interactive command ---

// ReplCmd runs the interactive assistant until "exit" or end of input.
type ReplCmd struct{}

// Run starts the assistant on the process's terminal.
func (c *ReplCmd) Run(g *Globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return g.repl(ctx, os.Stdin, os.Stdout, os.Stderr)
}

// repl runs one interactive session with explicit streams, enabling testable wiring.
// The book is saved when the session ends, including on interrupt.
func (g *Globals) repl(ctx context.Context, in io.Reader, w, errW io.Writer) error {
	s, err := g.openSession(errW)
	if err != nil {
		return err
	}
	defer s.close()

	r := tui.NewREPL(s.disp, tui.Options{
		In:         in,
		Out:        w,
		ForcePlain: s.cfg.UI.Plain,
		Greeting:   addressbook.Greeting(filepath.Dir(g.Config)),
		Logger:     s.log,
	})
	runErr := r.Run(ctx)
	if errors.Is(runErr, context.Canceled) {
		s.log.Info("session interrupted")
		runErr = nil
	}

	if err := s.save(); err != nil {
		return err
	}
	return runErr
}

// --- One-shot commands ---

// AddCmd adds a contact or appends a phone.
type AddCmd struct {
	Name  string `arg:"" help:"Contact name."`
	Phone string `arg:"" help:"Ten-digit phone number."`
}

// Run executes the add command.
func (c *AddCmd) Run(g *Globals) error {
	return g.oneShot(os.Stdout, os.Stderr, "add", c.Name, c.Phone)
}

// ChangeCmd replaces one phone of a contact.
type ChangeCmd struct {
	Name     string `arg:"" help:"Contact name."`
	OldPhone string `arg:"" help:"Phone to replace."`
	NewPhone string `arg:"" help:"Replacement phone."`
}

// Run executes the change command.
func (c *ChangeCmd) Run(g *Globals) error {
	return g.oneShot(os.Stdout, os.Stderr, "change", c.Name, c.OldPhone, c.NewPhone)
}

// PhoneCmd shows one contact.
type PhoneCmd struct {
	Name string `arg:"" help:"Contact name."`
}

// Run executes the phone command.
func (c *PhoneCmd) Run(g *Globals) error {
	return g.oneShot(os.Stdout, os.Stderr, "phone", c.Name)
}

// AllCmd lists every contact.
type AllCmd struct{}

// Run executes the all command.
func (c *AllCmd) Run(g *Globals) error {
	return g.oneShot(os.Stdout, os.Stderr, "all")
}

// AddBirthdayCmd sets a contact's birthday.
type AddBirthdayCmd struct {
	Name     string `arg:"" help:"Contact name."`
	Birthday string `arg:"" help:"Birthday as DD.MM.YYYY."`
}

// Run executes the add-birthday command.
func (c *AddBirthdayCmd) Run(g *Globals) error {
	return g.oneShot(os.Stdout, os.Stderr, "add-birthday", c.Name, c.Birthday)
}

// ShowBirthdayCmd shows a contact's birthday.
type ShowBirthdayCmd struct {
	Name string `arg:"" help:"Contact name."`
}

// Run executes the show-birthday command.
func (c *ShowBirthdayCmd) Run(g *Globals) error {
	return g.oneShot(os.Stdout, os.Stderr, "show-birthday", c.Name)
}

// BirthdaysCmd lists upcoming birthdays. Days is kept as text so that bad
// values are reported the same way as in the interactive assistant.
type BirthdaysCmd struct {
	Days string `arg:"" optional:"" help:"Window in days (default from config)."`
}

// Run executes the birthdays command.
func (c *BirthdaysCmd) Run(g *Globals) error {
	if c.Days == "" {
		return g.oneShot(os.Stdout, os.Stderr, "birthdays")
	}
	return g.oneShot(os.Stdout, os.Stderr, "birthdays", c.Days)
}

// DeleteCmd removes a contact.
type DeleteCmd struct {
	Name string `arg:"" help:"Contact name."`
}

// Run executes the delete command.
func (c *DeleteCmd) Run(g *Globals) error {
	return g.oneShot(os.Stdout, os.Stderr, "delete", c.Name)
}

// RemovePhoneCmd removes a phone from a contact.
type RemovePhoneCmd struct {
	Name  string `arg:"" help:"Contact name."`
	Phone string `arg:"" help:"Phone to remove."`
}

// Run executes the remove-phone command.
func (c *RemovePhoneCmd) Run(g *Globals) error {
	return g.oneShot(os.Stdout, os.Stderr, "remove-phone", c.Name, c.Phone)
}

// oneShot opens a session, dispatches a single command, prints its reply to w
// and saves the book if the command changed it.
func (g *Globals) oneShot(w, errW io.Writer, name string, args ...string) error {
	s, err := g.openSession(errW)
	if err != nil {
		return err
	}
	defer s.close()

	reply, err := s.disp.Dispatch(name, args)
	if err != nil {
		return err
	}
	if out := tui.ThemeFor(w).Render(reply); out != "" {
		_, _ = fmt.Fprintln(w, out)
	}
	if !reply.Changed {
		return nil
	}
	return s.save()
}

// --- Session ---

// session holds everything one command needs between load and save.
type session struct {
	cfg       *config.Config
	log       *slog.Logger
	logCloser io.Closer
	store     *store.FileStore
	disp      *command.Dispatcher
}

// loadConfig loads layered config from user and project paths, applies env
// overrides and then the CLI flags.
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/addressbook/config.yaml"),
		g.Config,
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	// Apply CLI flag overrides.
	if g.Book != "" {
		cfg.Storage.Path = g.Book
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.LogFormat != "" {
		cfg.Log.Format = g.LogFormat
	}
	if g.LogFile != "" {
		cfg.Log.File = g.LogFile
	}
	if g.NoTUI {
		cfg.UI.Plain = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openSession loads config, builds the logger and loads the book.
func (g *Globals) openSession(errW io.Writer) (*session, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, &setupError{err: err}
	}

	logger, closer, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Stderr: errW,
	})
	if err != nil {
		return nil, &setupError{err: err}
	}
	logger.Debug("config loaded", "config", g.Config, "book", cfg.Storage.Path)

	st := store.NewFileStore(cfg.Storage.Path)
	b, err := st.Load()
	if err != nil {
		_ = closer.Close()
		return nil, &setupError{err: err}
	}
	logger.Info("book loaded", "path", st.Path(), "contacts", b.Len())

	return &session{
		cfg:       cfg,
		log:       logger,
		logCloser: closer,
		store:     st,
		disp: command.New(b,
			command.WithDefaultDays(cfg.Birthdays.DefaultDays),
			command.WithLogger(logger),
		),
	}, nil
}

func (s *session) book() *book.Book { return s.disp.Book() }

func (s *session) save() error {
	if err := s.store.Save(s.book()); err != nil {
		s.log.Error("saving book failed", "path", s.store.Path(), "err", err)
		return &setupError{err: err}
	}
	s.log.Info("book saved", "path", s.store.Path(), "contacts", s.book().Len())
	return nil
}

func (s *session) close() {
	_ = s.logCloser.Close()
}

// --- Errors and exit codes ---

// Exit codes.
const (
	exitSuccess = 0
	exitInput   = 1
	exitSetup   = 2
)

// setupError marks failures to load config, open logs or read and write the book.
type setupError struct {
	err error
}

func (e *setupError) Error() string { return e.err.Error() }
func (e *setupError) Unwrap() error { return e.err }

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *setupError
	if errors.As(err, &se) {
		return exitSetup
	}
	if isInputError(err) {
		return exitInput
	}
	return exitSetup
}

func isInputError(err error) bool {
	for _, target := range []error{
		contact.ErrValidation,
		contact.ErrNotFound,
		contact.ErrInvalidArgument,
		command.ErrUsage,
		command.ErrUnknownCommand,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// report writes err to w: input errors in the assistant's wording, anything
// else with an "error:" prefix.
func report(w io.Writer, err error) {
	if exitCode(err) == exitInput {
		_, _ = fmt.Fprintln(w, tui.ErrorMessage(err))
		return
	}
	_, _ = fmt.Fprintf(w, "error: %s\n", err)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("addressbook"),
		kong.Description("A local contact directory with upcoming birthday reminders."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run(&cli.Globals)
	if err != nil {
		report(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
