package command

import (
	"fmt"
	"strconv"

	"github.com/smileynet/addressbook/internal/contact"
)

// commands returns the command table in help order.
func commands() []*entry {
	return []*entry{
		{Usage: Usage{Name: "hello", Summary: "Greet the bot"}, run: (*Dispatcher).hello},
		{Usage: Usage{Name: "add", Aliases: []string{"ad"}, Args: "<name> <phone>", Summary: "Add a contact, or a phone to an existing contact"}, minArgs: 2, run: (*Dispatcher).add},
		{Usage: Usage{Name: "change", Aliases: []string{"ch"}, Args: "<name> <old_phone> <new_phone>", Summary: "Change an existing phone number"}, minArgs: 3, run: (*Dispatcher).change},
		{Usage: Usage{Name: "phone", Aliases: []string{"ph"}, Args: "<name>", Summary: "Show contact details by name"}, minArgs: 1, run: (*Dispatcher).phone},
		{Usage: Usage{Name: "remove-phone", Aliases: []string{"rm-ph"}, Args: "<name> <phone>", Summary: "Remove a phone number from a contact"}, minArgs: 2, run: (*Dispatcher).removePhone},
		{Usage: Usage{Name: "delete", Aliases: []string{"del"}, Args: "<name>", Summary: "Delete a contact"}, minArgs: 1, run: (*Dispatcher).deleteContact},
		{Usage: Usage{Name: "all", Aliases: []string{"a"}, Summary: "Show all contacts"}, run: (*Dispatcher).all},
		{Usage: Usage{Name: "add-birthday", Aliases: []string{"ad-br"}, Args: "<name> <DD.MM.YYYY>", Summary: "Add a birthday to a contact"}, minArgs: 2, run: (*Dispatcher).addBirthday},
		{Usage: Usage{Name: "show-birthday", Aliases: []string{"sh-br"}, Args: "<name>", Summary: "Show the birthday of a contact"}, minArgs: 1, run: (*Dispatcher).showBirthday},
		{Usage: Usage{Name: "birthdays", Aliases: []string{"br"}, Args: "[days]", Summary: "Show birthdays in the next days (default 7)"}, run: (*Dispatcher).birthdays},
		{Usage: Usage{Name: "help", Aliases: []string{"h", "?"}, Summary: "This help"}, run: (*Dispatcher).help},
		{Usage: Usage{Name: "close", Aliases: []string{"exit", "e", "c"}, Summary: "Exit"}, run: (*Dispatcher).exit},
	}
}

func (d *Dispatcher) hello([]string) (Reply, error) {
	return Reply{Kind: KindMessage, Message: "How can I help you?"}, nil
}

// add appends the phone to an existing contact, or creates the contact. A new
// record is only stored once its first phone validated.
func (d *Dispatcher) add(args []string) (Reply, error) {
	name, phone := args[0], args[1]
	if r, ok := d.book.Find(name); ok {
		if err := r.AddPhone(phone); err != nil {
			return Reply{}, err
		}
		return Reply{Kind: KindSuccess, Message: fmt.Sprintf("Phone added to %s.", name), Changed: true}, nil
	}

	r, err := contact.NewRecord(name)
	if err != nil {
		return Reply{}, err
	}
	if err := r.AddPhone(phone); err != nil {
		return Reply{}, err
	}
	d.book.Add(r)
	return Reply{Kind: KindSuccess, Message: "Contact added.", Changed: true}, nil
}

func (d *Dispatcher) change(args []string) (Reply, error) {
	r, err := d.record(args[0])
	if err != nil {
		return Reply{}, err
	}
	if err := r.EditPhone(args[1], args[2]); err != nil {
		return Reply{}, err
	}
	return Reply{Kind: KindSuccess, Message: "Phone number updated.", Changed: true}, nil
}

func (d *Dispatcher) phone(args []string) (Reply, error) {
	r, err := d.record(args[0])
	if err != nil {
		return Reply{}, err
	}
	return Reply{Kind: KindContact, Records: []*contact.Record{r}}, nil
}

func (d *Dispatcher) removePhone(args []string) (Reply, error) {
	r, err := d.record(args[0])
	if err != nil {
		return Reply{}, err
	}
	if _, ok := r.FindPhone(args[1]); !ok {
		return Reply{}, &contact.NotFoundError{Kind: "phone", Key: args[1]}
	}
	r.RemovePhone(args[1])
	return Reply{Kind: KindSuccess, Message: "Phone number removed.", Changed: true}, nil
}

func (d *Dispatcher) deleteContact(args []string) (Reply, error) {
	if _, err := d.record(args[0]); err != nil {
		return Reply{}, err
	}
	d.book.Delete(args[0])
	return Reply{Kind: KindSuccess, Message: fmt.Sprintf("Contact %s deleted.", args[0]), Changed: true}, nil
}

func (d *Dispatcher) all([]string) (Reply, error) {
	if d.book.Len() == 0 {
		return Reply{Kind: KindEmpty, Message: "No contacts found."}, nil
	}
	return Reply{Kind: KindContacts, Records: d.book.All()}, nil
}

func (d *Dispatcher) addBirthday(args []string) (Reply, error) {
	r, err := d.record(args[0])
	if err != nil {
		return Reply{}, err
	}
	if err := r.AddBirthday(args[1]); err != nil {
		return Reply{}, err
	}
	return Reply{Kind: KindSuccess, Message: "Birthday added.", Changed: true}, nil
}

func (d *Dispatcher) showBirthday(args []string) (Reply, error) {
	r, err := d.record(args[0])
	if err != nil {
		return Reply{}, err
	}
	bd, ok := r.Birthday()
	if !ok {
		return Reply{}, &contact.NotFoundError{Kind: "birthday", Key: args[0]}
	}
	return Reply{Kind: KindBirthday, Records: []*contact.Record{r}, Birthday: bd}, nil
}

func (d *Dispatcher) birthdays(args []string) (Reply, error) {
	days := d.defaultDays
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return Reply{}, &contact.InvalidArgumentError{
				Name:   "days",
				Value:  args[0],
				Reason: "must be a non-negative integer",
			}
		}
		days = n
	}

	upcoming, err := d.book.UpcomingBirthdays(days)
	if err != nil {
		return Reply{}, err
	}
	if len(upcoming) == 0 {
		return Reply{
			Kind:    KindEmpty,
			Message: fmt.Sprintf("No upcoming birthdays in the next %d days.", days),
			Days:    days,
		}, nil
	}
	return Reply{Kind: KindBirthdays, Upcoming: upcoming, Days: days}, nil
}

func (d *Dispatcher) help([]string) (Reply, error) {
	return Reply{Kind: KindHelp, Commands: d.Usages()}, nil
}

func (d *Dispatcher) exit([]string) (Reply, error) {
	return Reply{Kind: KindExit, Message: "Goodbye!"}, nil
}
