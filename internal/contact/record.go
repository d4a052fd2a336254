package contact

import (
	"slices"
	"strings"
)

// Record is one contact: a name, an ordered list of phones and an optional
// birthday.
type Record struct {
	name        Name
	phones      []Phone
	birthday    Birthday
	hasBirthday bool // 01.01.0001 parses to the zero time, so presence is tracked here.
}

// NewRecord creates a Record with no phones and no birthday.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact name.
func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phones in insertion order.
func (r *Record) Phones() []Phone {
	return slices.Clone(r.phones)
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	return r.birthday, r.hasBirthday
}

// AddPhone validates raw and appends it. Duplicates are kept.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone drops every phone equal to raw. Removing an absent phone is a no-op.
func (r *Record) RemovePhone(raw string) {
	r.phones = slices.DeleteFunc(r.phones, func(p Phone) bool {
		return p.value == raw
	})
}

// EditPhone replaces every occurrence of oldPhone with newPhone. The new phone
// is validated and appended before the old one is removed, so a failed edit
// leaves the phones untouched.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	if _, ok := r.FindPhone(oldPhone); !ok {
		return &NotFoundError{Kind: "phone", Key: oldPhone}
	}
	if oldPhone == newPhone {
		// Replacing a phone with itself must not drop it.
		return nil
	}
	if err := r.AddPhone(newPhone); err != nil {
		return err
	}
	r.RemovePhone(oldPhone)
	return nil
}

// FindPhone returns the first phone equal to raw.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	i := slices.IndexFunc(r.phones, func(p Phone) bool {
		return p.value == raw
	})
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// AddBirthday validates raw and sets it, replacing any previous birthday.
func (r *Record) AddBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = b
	r.hasBirthday = true
	return nil
}

// String renders the record as "name, phones: p1; p2".
func (r *Record) String() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.value
	}
	return r.name.value + ", phones: " + strings.Join(values, "; ")
}
