// Package store persists the whole address book to a JSON file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/smileynet/addressbook/internal/book"
	"github.com/smileynet/addressbook/internal/contact"
)

// formatVersion is written into every file and checked on load.
const formatVersion = 1

// ErrUnsupportedVersion indicates a file written by a newer format.
var ErrUnsupportedVersion = errors.New("store: unsupported file version")

// document is the on-disk layout.
type document struct {
	Version  int            `json:"version"`
	Contacts []contactEntry `json:"contacts"`
}

// contactEntry is one record on disk. Birthday uses DD.MM.YYYY.
type contactEntry struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// FileStore loads and saves a book at a fixed path.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Load reads the book from disk. A missing file yields an empty book.
// Every value goes back through the contact constructors, so a hand-edited
// file with bad data is rejected rather than loaded.
func (s *FileStore) Load(opts ...book.Option) (*book.Book, error) {
	b := book.New(opts...)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return b, nil
		}
		return nil, fmt.Errorf("store: reading %s: %w", s.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("store: parsing %s: %w", s.path, err)
	}
	if doc.Version > formatVersion {
		return nil, fmt.Errorf("%w: %d in %s", ErrUnsupportedVersion, doc.Version, s.path)
	}

	for i, e := range doc.Contacts {
		r, err := decodeEntry(e)
		if err != nil {
			return nil, fmt.Errorf("store: contact %d in %s: %w", i, s.path, err)
		}
		b.Add(r)
	}
	return b, nil
}

// Save writes the book to a temporary file next to the target and renames
// it into place.
func (s *FileStore) Save(b *book.Book) error {
	records := b.All()
	doc := document{
		Version:  formatVersion,
		Contacts: make([]contactEntry, len(records)),
	}
	for i, r := range records {
		doc.Contacts[i] = encodeEntry(r)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshaling: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("store: creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("store: writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: closing %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("store: chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("store: writing %s: %w", s.path, err)
	}
	return nil
}

func encodeEntry(r *contact.Record) contactEntry {
	phones := r.Phones()
	e := contactEntry{
		Name:   r.Name().Value(),
		Phones: make([]string, len(phones)),
	}
	for i, p := range phones {
		e.Phones[i] = p.Value()
	}
	if bd, ok := r.Birthday(); ok {
		e.Birthday = bd.String()
	}
	return e
}

func decodeEntry(e contactEntry) (*contact.Record, error) {
	r, err := contact.NewRecord(e.Name)
	if err != nil {
		return nil, err
	}
	for _, p := range e.Phones {
		if err := r.AddPhone(p); err != nil {
			return nil, err
		}
	}
	if e.Birthday != "" {
		if err := r.AddBirthday(e.Birthday); err != nil {
			return nil, err
		}
	}
	return r, nil
}
