package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smileynet/addressbook/internal/command"
	"github.com/smileynet/addressbook/internal/contact"
)

// helpColumn is the width of the synopsis column in help output.
const helpColumn = 40

// Render formats a reply for the terminal. KindNone renders as "".
func (t Theme) Render(r command.Reply) string {
	switch r.Kind {
	case command.KindNone:
		return ""
	case command.KindSuccess:
		return t.paint(t.success, r.Message)
	case command.KindEmpty:
		return t.paint(t.warning, r.Message)
	case command.KindContact:
		return t.record(r.Records[0])
	case command.KindContacts:
		lines := []string{t.paint(t.warning, "All contacts:")}
		for _, rec := range r.Records {
			lines = append(lines, t.record(rec))
		}
		return strings.Join(lines, "\n")
	case command.KindBirthday:
		return t.paint(t.label, "Birthday: ") + t.paint(t.value, r.Birthday.String())
	case command.KindBirthdays:
		lines := []string{t.paint(t.warning, fmt.Sprintf("Upcoming birthdays in the next %d days:", r.Days))}
		for _, u := range r.Upcoming {
			lines = append(lines, t.paint(t.label, "Contact: ")+t.paint(t.name, u.Name)+
				t.paint(t.label, ", Birthday: ")+t.paint(t.value, u.DateString()))
		}
		return strings.Join(lines, "\n")
	case command.KindHelp:
		return t.help(r.Commands)
	default:
		return t.paint(t.label, r.Message)
	}
}

// RenderError formats an error for the terminal.
func (t Theme) RenderError(err error) string {
	return t.paint(t.failure, ErrorMessage(err))
}

// ErrorMessage maps an error to the text shown to the user.
func ErrorMessage(err error) string {
	var (
		verr *contact.ValidationError
		nf   *contact.NotFoundError
		iae  *contact.InvalidArgumentError
		ue   *command.UsageError
	)
	switch {
	case errors.As(err, &verr):
		return "Error: " + verr.Error()
	case errors.As(err, &nf):
		return "Error: " + upperFirst(nf.Error())
	case errors.As(err, &iae):
		return "Error: " + iae.Error()
	case errors.As(err, &ue):
		return "Error: " + ue.Error()
	case errors.Is(err, command.ErrUnknownCommand):
		return "Invalid command. Type \"help\" to list commands."
	default:
		return "Error: " + err.Error()
	}
}

// record renders "name, phones: p1; p2" with the name and phones colored.
func (t Theme) record(r *contact.Record) string {
	phones := r.Phones()
	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = t.paint(t.value, p.Value())
	}
	return t.paint(t.name, r.Name().Value()) + t.paint(t.label, ", phones: ") + strings.Join(values, t.paint(t.label, "; "))
}

func (t Theme) help(usages []command.Usage) string {
	lines := []string{t.paint(t.label, "Commands:")}
	for _, u := range usages {
		synopsis := u.Synopsis()
		if len(u.Aliases) > 0 {
			synopsis += " | " + strings.Join(u.Aliases, " | ")
		}
		pad := helpColumn - len(synopsis)
		if pad < 1 {
			pad = 1
		}
		lines = append(lines, t.paint(t.command, synopsis)+strings.Repeat(" ", pad)+t.paint(t.label, u.Summary))
	}
	return strings.Join(lines, "\n")
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
