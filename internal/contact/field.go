// Package contact holds the validated fields and the per-contact record.
package contact

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// BirthdayLayout is the textual format accepted for birthdays (DD.MM.YYYY).
const BirthdayLayout = "02.01.2006"

// validate is shared by all field constructors.
var validate = validator.New()

// Name is a non-empty contact name. It identifies a record within a book.
type Name struct {
	value string
}

// NewName validates value and returns a Name.
func NewName(value string) (Name, error) {
	if err := validate.Var(value, "required"); err != nil {
		return Name{}, &ValidationError{Field: "name", Value: value, Reason: "name is required"}
	}
	return Name{value: value}, nil
}

// Value returns the raw name.
func (n Name) Value() string { return n.value }

func (n Name) String() string { return n.value }

// Phone is a phone number of exactly ten decimal digits.
type Phone struct {
	value string
}

// NewPhone validates value and returns a Phone. Anything other than ten
// ASCII digits is rejected, including surrounding whitespace.
func NewPhone(value string) (Phone, error) {
	if err := validate.Var(value, "required,len=10,number"); err != nil {
		return Phone{}, &ValidationError{Field: "phone", Value: value, Reason: phoneReason(err)}
	}
	return Phone{value: value}, nil
}

// phoneReason turns a validator failure into a short user-facing reason.
func phoneReason(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Tag() {
		case "required":
			return "phone is required"
		case "number":
			return "it should contain digits only"
		}
	}
	return "it should be 10 digits"
}

// Value returns the raw digits.
func (p Phone) Value() string { return p.value }

func (p Phone) String() string { return p.value }

// Birthday is a calendar date without a time of day.
type Birthday struct {
	date time.Time
}

// NewBirthday parses value as DD.MM.YYYY after trimming surrounding
// whitespace. Impossible dates such as 31.02.2020 are rejected.
func NewBirthday(value string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, strings.TrimSpace(value))
	if err != nil {
		return Birthday{}, &ValidationError{
			Field:  "birthday",
			Value:  value,
			Reason: "invalid date format, use DD.MM.YYYY",
		}
	}
	return Birthday{date: t}, nil
}

// Date returns the birthday at midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

// Month returns the month of the birthday.
func (b Birthday) Month() time.Month { return b.date.Month() }

// Day returns the day of the month of the birthday.
func (b Birthday) Day() int { return b.date.Day() }

func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }
