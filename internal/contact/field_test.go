package contact

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"simple", "Alice", false},
		{"with digits", "Bob2", false},
		{"unicode", "Юрій", false},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewName(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("NewName(%q) error = %v, want ErrValidation", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewName(%q) error = %v", tt.value, err)
			}
			if n.Value() != tt.value {
				t.Errorf("Value() = %q, want %q", n.Value(), tt.value)
			}
		})
	}
}

func TestNewPhone_AcceptsTenDigits(t *testing.T) {
	for _, v := range []string{"0501234567", "0000000000", "9999999999", "1234567890"} {
		p, err := NewPhone(v)
		if err != nil {
			t.Errorf("NewPhone(%q) error = %v", v, err)
			continue
		}
		if p.String() != v {
			t.Errorf("String() = %q, want %q", p.String(), v)
		}
	}
}

func TestNewPhone_RejectsEverythingElse(t *testing.T) {
	tests := []string{
		"",
		"12345",
		"05012345678",
		"050123456",
		"050-123-4567",
		"+380501234",
		" 0501234567",
		"0501234567 ",
		"0501234567\n",
		"050123456a",
		"０５０１２３４５６７", // full-width digits
	}
	for _, v := range tests {
		_, err := NewPhone(v)
		if err == nil {
			t.Errorf("NewPhone(%q) should fail", v)
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("NewPhone(%q) error type = %T, want *ValidationError", v, err)
			continue
		}
		if verr.Field != "phone" {
			t.Errorf("Field = %q, want %q", verr.Field, "phone")
		}
	}
}

func TestNewPhone_ErrorMessage(t *testing.T) {
	_, err := NewPhone("12345")
	if err == nil {
		t.Fatal("NewPhone(12345) should fail")
	}
	if !strings.Contains(err.Error(), `"12345"`) {
		t.Errorf("error = %q, want it to quote the input", err)
	}
}

func TestNewBirthday(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{"valid", "15.06.2000", time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC), false},
		{"trimmed", "  01.01.1990 ", time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC), false},
		{"leap day", "29.02.2020", time.Date(2020, time.February, 29, 0, 0, 0, 0, time.UTC), false},
		{"impossible date", "31.02.2020", time.Time{}, true},
		{"leap day in common year", "29.02.2021", time.Time{}, true},
		{"month out of range", "01.13.2020", time.Time{}, true},
		{"unpadded day", "1.06.2000", time.Time{}, true},
		{"two digit year", "15.06.00", time.Time{}, true},
		{"iso layout", "2000-06-15", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBirthday(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("NewBirthday(%q) error = %v, want ErrValidation", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewBirthday(%q) error = %v", tt.value, err)
			}
			if !b.Date().Equal(tt.want) {
				t.Errorf("Date() = %v, want %v", b.Date(), tt.want)
			}
		})
	}
}

func TestBirthday_String(t *testing.T) {
	b, err := NewBirthday(" 05.03.1987")
	if err != nil {
		t.Fatalf("NewBirthday() error = %v", err)
	}
	if got := b.String(); got != "05.03.1987" {
		t.Errorf("String() = %q, want %q", got, "05.03.1987")
	}
	if b.Month() != time.March || b.Day() != 5 {
		t.Errorf("Month/Day = %v/%d, want March/5", b.Month(), b.Day())
	}
}

func TestErrorKinds_MatchSentinels(t *testing.T) {
	tests := []struct {
		err  error
		want error
	}{
		{&ValidationError{Field: "phone"}, ErrValidation},
		{&NotFoundError{Kind: "contact", Key: "Bob"}, ErrNotFound},
		{&InvalidArgumentError{Name: "days", Value: "-1"}, ErrInvalidArgument},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, tt.want) {
			t.Errorf("errors.Is(%T, %v) = false, want true", tt.err, tt.want)
		}
		if errors.Is(tt.err, errors.New("other")) {
			t.Errorf("errors.Is(%T, other) = true, want false", tt.err)
		}
	}
}
