package jalali

import (
	"fmt"
	"time"

	"github.com/kinko/pms/persian"
)

// Cell is one day button of the month view.
type Cell struct {
	Date  Date
	Today bool
}

// Label is the day number in Persian digits.
func (c Cell) Label() string { return persian.ToPersianDigits(fmt.Sprint(c.Date.Day)) }

// Gregorian formats the cell's Gregorian day as yyyy-mm-dd, the value sent
// with the form.
func (c Cell) Gregorian() string {
	t, err := c.Date.Gregorian()
	if err != nil {
		return ""
	}
	return t.Format(time.DateOnly)
}

// Grid is the month view of the date picker. Weeks start on Saturday.
type Grid struct {
	Year    int
	Month   int
	Padding int // empty cells before day 1
	Days    []Cell
}

// MonthGrid lays out month jm of year jy, flagging the day of today.
func MonthGrid(jy, jm int, today time.Time) (Grid, error) {
	first := Date{jy, jm, 1}
	g1, err := first.Gregorian()
	if err != nil {
		return Grid{}, err
	}

	now := FromGregorian(today)
	n := MonthLength(jy, jm)
	grid := Grid{
		Year:    jy,
		Month:   jm,
		Padding: weekday(g1),
		Days:    make([]Cell, n),
	}
	for i := range grid.Days {
		d := Date{jy, jm, i + 1}
		grid.Days[i] = Cell{Date: d, Today: d == now}
	}
	return grid, nil
}

// Label is the month name and year, in Persian digits.
func (g Grid) Label() string {
	if g.Month < 1 || g.Month > 12 {
		return ""
	}
	return persian.ToPersianDigits(fmt.Sprintf("%s %d", MonthNames[g.Month-1], g.Year))
}

// Next returns the year and month after g.
func (g Grid) Next() (int, int) {
	if g.Month == 12 {
		return g.Year + 1, 1
	}
	return g.Year, g.Month + 1
}

// Prev returns the year and month before g.
func (g Grid) Prev() (int, int) {
	if g.Month == 1 {
		return g.Year - 1, 12
	}
	return g.Year, g.Month - 1
}
