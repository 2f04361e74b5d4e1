// Package jalali converts between the Jalali (Persian solar) and Gregorian
// calendars and lays out the month view of the date picker.
//
// Conversion is done by github.com/jalaali/go-jalaali, valid for Jalali
// years -61 to 3177.
package jalali

import (
	"errors"
	"fmt"
	"time"

	"github.com/jalaali/go-jalaali"
	"github.com/kinko/pms/persian"
)

// ErrInvalidDate is returned for a year, month or day outside the calendar.
var ErrInvalidDate = errors.New("invalid jalali date")

// MonthNames are the Jalali month names, Farvardin first.
var MonthNames = func() (names [12]string) {
	for m := jalaali.Farvardin; m <= jalaali.Esfand; m++ {
		names[m-1] = m.String()
	}
	return names
}()

// Date is a Jalali calendar day.
type Date struct {
	Year  int
	Month int
	Day   int
}

// String formats d as yyyy/mm/dd.
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// Persian is String in Persian digits.
func (d Date) Persian() string { return persian.ToPersianDigits(d.String()) }

// Valid reports whether d is a day of the calendar.
func (d Date) Valid() bool { return jalaali.IsValidDate(d.Year, d.Month, d.Day) }

// Gregorian returns d as midnight UTC of the matching Gregorian day.
func (d Date) Gregorian() (time.Time, error) {
	gy, gm, gd, err := jalaali.ToGregorian(d.Year, jalaali.Month(d.Month), d.Day)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w: %v", d, ErrInvalidDate, err)
	}
	return time.Date(gy, gm, gd, 0, 0, 0, 0, time.UTC), nil
}

// ToGregorian converts a Jalali date.
func ToGregorian(jy, jm, jd int) (time.Time, error) {
	return Date{jy, jm, jd}.Gregorian()
}

// FromGregorian returns the Jalali date of t's calendar day, or the zero
// Date when t falls outside the supported years.
func FromGregorian(t time.Time) Date {
	jy, jm, jd, err := jalaali.ToJalaali(t.Year(), t.Month(), t.Day())
	if err != nil {
		return Date{}
	}
	return Date{jy, int(jm), jd}
}

// IsLeap reports whether Esfand of jy has 30 days.
func IsLeap(jy int) bool {
	leap, err := jalaali.IsLeapYear(jy)
	return err == nil && leap
}

// MonthLength returns the number of days of month jm in year jy, 0 when
// either is out of range.
func MonthLength(jy, jm int) int {
	if jm < 1 || jm > 12 {
		return 0
	}
	n, err := jalaali.MonthLength(jy, jm)
	if err != nil {
		return 0
	}
	return n
}

// weekday is the column of t in a Saturday-first week.
func weekday(t time.Time) int {
	return int(jalaali.From(t).Weekday())
}
