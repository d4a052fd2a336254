// Package book implements the contact directory: records keyed by name in
// insertion order, plus the upcoming-birthday query.
package book

import (
	"slices"
	"time"

	"github.com/smileynet/addressbook/internal/contact"
)

// Book maps contact names to records and preserves insertion order.
// It is not safe for concurrent use.
type Book struct {
	index   map[string]int
	records []*contact.Record
	now     func() time.Time
}

// Option configures a Book.
type Option func(*Book)

// WithClock overrides the clock used to determine "today".
func WithClock(now func() time.Time) Option {
	return func(b *Book) { b.now = now }
}

// New creates an empty Book.
func New(opts ...Option) *Book {
	b := &Book{
		index: make(map[string]int),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add inserts r keyed by its name. An existing record with the same name is
// replaced in place without merging; callers decide between adding a phone
// and creating a contact.
func (b *Book) Add(r *contact.Record) {
	key := r.Name().Value()
	if i, ok := b.index[key]; ok {
		b.records[i] = r
		return
	}
	b.index[key] = len(b.records)
	b.records = append(b.records, r)
}

// Find returns the record with exactly the given name.
func (b *Book) Find(name string) (*contact.Record, bool) {
	i, ok := b.index[name]
	if !ok {
		return nil, false
	}
	return b.records[i], true
}

// Delete removes the record with the given name. Deleting an absent name is
// a no-op.
func (b *Book) Delete(name string) {
	i, ok := b.index[name]
	if !ok {
		return
	}
	delete(b.index, name)
	b.records = slices.Delete(b.records, i, i+1)
	for j := i; j < len(b.records); j++ {
		b.index[b.records[j].Name().Value()] = j
	}
}

// All returns every record in insertion order.
func (b *Book) All() []*contact.Record {
	return slices.Clone(b.records)
}

// Len returns the number of records.
func (b *Book) Len() int {
	return len(b.records)
}
