package book

import (
	"strconv"
	"time"

	"github.com/smileynet/addressbook/internal/contact"
)

// DefaultUpcomingDays is the window used when callers omit one.
const DefaultUpcomingDays = 7

// UpcomingBirthday is a contact whose next (weekend-shifted) birthday falls
// inside the requested window.
type UpcomingBirthday struct {
	Name string
	Date time.Time // Observed date, already moved off the weekend.
}

// DateString formats the observed date as DD.MM.YYYY.
func (u UpcomingBirthday) DateString() string {
	return u.Date.Format(contact.BirthdayLayout)
}

// UpcomingBirthdays reports contacts whose next birthday, moved to Monday
// when it lands on a weekend, falls within [today, today+days]. Results
// follow book order.
//
// The next occurrence is chosen from the raw birthday first (this year, or
// next year when it already passed) and shifted once afterwards. A late
// December birthday shifted into January keeps the year it was chosen for.
func (b *Book) UpcomingBirthdays(days int) ([]UpcomingBirthday, error) {
	if days < 0 {
		return nil, &contact.InvalidArgumentError{
			Name:   "days",
			Value:  strconv.Itoa(days),
			Reason: "must be a non-negative integer",
		}
	}

	today := calendarDate(b.now())
	last := today.AddDate(0, 0, days)

	var out []UpcomingBirthday
	for _, r := range b.records {
		bd, ok := r.Birthday()
		if !ok {
			continue
		}
		observed := shiftWeekend(nextOccurrence(bd, today))
		if observed.Before(today) || observed.After(last) {
			continue
		}
		out = append(out, UpcomingBirthday{Name: r.Name().Value(), Date: observed})
	}
	return out, nil
}

// nextOccurrence returns the birthday in today's year, or in the following
// year when that date is strictly before today.
func nextOccurrence(bd contact.Birthday, today time.Time) time.Time {
	d := anniversary(bd, today.Year(), today.Location())
	if d.Before(today) {
		d = anniversary(bd, today.Year()+1, today.Location())
	}
	return d
}

// anniversary places the birthday's month and day in year. Feb 29 is
// observed on Feb 28 in common years.
func anniversary(bd contact.Birthday, year int, loc *time.Location) time.Time {
	day := bd.Day()
	if bd.Month() == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, bd.Month(), day, 0, 0, 0, 0, loc)
}

// shiftWeekend moves Saturday and Sunday forward to the following Monday.
func shiftWeekend(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

// calendarDate truncates t to midnight in its own location.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
