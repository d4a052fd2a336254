package store

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/smileynet/addressbook/internal/book"
	"github.com/smileynet/addressbook/internal/contact"
)

func phoneValues(r *contact.Record) []string {
	var out []string
	for _, p := range r.Phones() {
		out = append(out, p.Value())
	}
	return out
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	// Given a populated book
	dir := t.TempDir()
	fs := NewFileStore(filepath.Join(dir, "nested", "book.json"))

	b := book.New()
	alice, _ := contact.NewRecord("Alice")
	_ = alice.AddPhone("0501234567")
	_ = alice.AddPhone("0670000000")
	_ = alice.AddPhone("0501234567")
	_ = alice.AddBirthday("29.02.2000")
	bob, _ := contact.NewRecord("Bob")
	zed, _ := contact.NewRecord("Zed")
	_ = zed.AddPhone("0931112233")
	b.Add(zed)
	b.Add(alice)
	b.Add(bob)

	// When Save is called
	if err := fs.Save(b); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Then Load reconstructs names, ordered phones and birthdays
	loaded, err := fs.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", loaded.Len())
	}
	for i, r := range loaded.All() {
		want := b.All()[i]
		if r.Name() != want.Name() {
			t.Errorf("record %d name = %q, want %q", i, r.Name(), want.Name())
		}
		if !slices.Equal(phoneValues(r), phoneValues(want)) {
			t.Errorf("record %d phones = %v, want %v", i, phoneValues(r), phoneValues(want))
		}
		gotBD, gotOK := r.Birthday()
		wantBD, wantOK := want.Birthday()
		if gotOK != wantOK || !gotBD.Date().Equal(wantBD.Date()) {
			t.Errorf("record %d birthday = (%s, %v), want (%s, %v)", i, gotBD, gotOK, wantBD, wantOK)
		}
	}
}

func TestFileStore_SaveAndLoad_FirstDayOfYearOne(t *testing.T) {
	// Given a contact born on the earliest representable date
	fs := NewFileStore(filepath.Join(t.TempDir(), "book.json"))
	b := book.New()
	r, _ := contact.NewRecord("Alice")
	if err := r.AddBirthday("01.01.0001"); err != nil {
		t.Fatal(err)
	}
	b.Add(r)

	// When it is saved and reloaded
	if err := fs.Save(b); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	data, err := os.ReadFile(fs.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"birthday": "01.01.0001"`) {
		t.Errorf("file = %s, want the birthday written", data)
	}
	loaded, err := fs.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Then the birthday survives the round trip
	got, ok := loaded.Find("Alice")
	if !ok {
		t.Fatal("Alice missing after Load()")
	}
	if bd, ok := got.Birthday(); !ok || bd.String() != "01.01.0001" {
		t.Errorf("Birthday() = (%s, %v), want (01.01.0001, true)", bd, ok)
	}
}

func TestFileStore_LoadMissing(t *testing.T) {
	// Given no file on disk
	fs := NewFileStore(filepath.Join(t.TempDir(), "book.json"))

	// When Load is called
	b, err := fs.Load()

	// Then an empty book is returned
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestFileStore_LoadAppliesOptions(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "book.json"))
	called := false

	b, err := fs.Load(book.WithClock(func() time.Time { called = true; return time.Now() }))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := b.UpcomingBirthdays(1); err != nil {
		t.Fatalf("UpcomingBirthdays() error = %v", err)
	}
	if !called {
		t.Error("clock option was not applied to the loaded book")
	}
}

func TestFileStore_LoadRejectsBadData(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"invalid json", "{not json", nil},
		{"invalid phone", `{"version":1,"contacts":[{"name":"A","phones":["123"]}]}`, contact.ErrValidation},
		{"invalid birthday", `{"version":1,"contacts":[{"name":"A","phones":[],"birthday":"31.02.2020"}]}`, contact.ErrValidation},
		{"empty name", `{"version":1,"contacts":[{"name":"","phones":[]}]}`, contact.ErrValidation},
		{"newer version", `{"version":99,"contacts":[]}`, ErrUnsupportedVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "book.json")
			if err := os.WriteFile(p, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			_, err := NewFileStore(p).Load()

			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.HasPrefix(err.Error(), "store:") {
				t.Errorf("error = %q, want store: prefix", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFileStore_SaveOverwritesAndLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "book.json")
	fs := NewFileStore(p)

	b := book.New()
	r, _ := contact.NewRecord("Alice")
	b.Add(r)
	if err := fs.Save(b); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	b.Delete("Alice")
	if err := fs.Save(b); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := fs.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after overwrite", loaded.Len())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "book.json" {
		var got []string
		for _, e := range entries {
			got = append(got, e.Name())
		}
		t.Errorf("directory entries = %v, want [book.json]", got)
	}
}

func TestFileStore_SaveFormat(t *testing.T) {
	p := filepath.Join(t.TempDir(), "book.json")
	b := book.New()
	r, _ := contact.NewRecord("Alice")
	_ = r.AddPhone("0501234567")
	_ = r.AddBirthday("15.06.2000")
	b.Add(r)

	if err := NewFileStore(p).Save(b); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"version": 1`, `"name": "Alice"`, `"0501234567"`, `"birthday": "15.06.2000"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("file = %s, want to contain %s", data, want)
		}
	}
}
