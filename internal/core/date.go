package core

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for dates.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar day with no time-of-day component. The embedded time
// is always midnight UTC.
type Date struct {
	time.Time
}

// NewDate builds a date, normalizing out-of-range values the way time.Date
// does: month 0 is December of the previous year, day 0 the last day of
// the previous month.
func NewDate(year, month, day int) Date {
	return Date{time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today is the current calendar day in local time.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// Month shadows time.Time's method to return a plain int.
func (d Date) Month() int {
	return int(d.Time.Month())
}

// OnOrAfter reports d >= other.
func (d Date) OnOrAfter(other Date) bool {
	return !d.Time.Before(other.Time)
}

// OnOrBefore reports d <= other.
func (d Date) OnOrBefore(other Date) bool {
	return !d.Time.After(other.Time)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidDate, s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// LastDayOfMonth returns 28..31 for the given month.
func LastDayOfMonth(year, month int) int {
	return NewDate(year, month+1, 0).Day()
}

// AddMonthsClamped moves the date forward by whole months, clamping the day
// to the target month's length instead of letting it spill over. The clamp
// never sticks: Jan 31 plus one month is Feb 28, plus two is Mar 31.
func AddMonthsClamped(d Date, months int) Date {
	year := d.Year()
	month := d.Month() + months
	day := d.Day()
	if last := LastDayOfMonth(year, month); day > last {
		day = last
	}
	return NewDate(year, month, day)
}
