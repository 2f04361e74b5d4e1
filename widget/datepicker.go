package widget

import (
	"fmt"
	"time"

	"github.com/kinko/pms/jalali"
)

// Picked is the outcome of choosing a day.
type Picked struct {
	Display   string // yyyy/mm/dd in Persian digits
	Gregorian string // yyyy-mm-dd
}

// DatePicker is a Jalali month view attached to an input.
type DatePicker struct {
	ID ID

	// OnDateSelected, if set, is called with the picker ID and the
	// Gregorian date after every pick.
	OnDateSelected func(id ID, gregorian string)

	panels *Panels
	grid   jalali.Grid
	now    func() time.Time
}

// NewDatePicker returns a picker showing the current Jalali month.
func NewDatePicker(panels *Panels, id ID) (*DatePicker, error) {
	if id == "" {
		id = NewID()
	}
	dp := &DatePicker{ID: id, panels: panels, now: time.Now}
	today := jalali.FromGregorian(dp.now())
	if err := dp.Show(today.Year, today.Month); err != nil {
		return nil, err
	}
	return dp, nil
}

// Show switches the view to month jm of year jy.
func (dp *DatePicker) Show(jy, jm int) error {
	g, err := jalali.MonthGrid(jy, jm, dp.now())
	if err != nil {
		return err
	}
	dp.grid = g
	return nil
}

func (dp *DatePicker) Next() error { return dp.Show(dp.grid.Next()) }
func (dp *DatePicker) Prev() error { return dp.Show(dp.grid.Prev()) }

// Grid is the month currently shown.
func (dp *DatePicker) Grid() jalali.Grid { return dp.grid }

func (dp *DatePicker) Toggle()    { dp.panels.Toggle(dp.ID) }
func (dp *DatePicker) Open() bool { return dp.panels.IsOpen(dp.ID) }

// Pick chooses a day of the shown month and closes the picker.
func (dp *DatePicker) Pick(day int) (Picked, error) {
	if day < 1 || day > len(dp.grid.Days) {
		return Picked{}, fmt.Errorf("day %d of %s: %w", day, dp.grid.Label(), jalali.ErrInvalidDate)
	}
	cell := dp.grid.Days[day-1]
	p := Picked{
		Display:   cell.Date.Persian(),
		Gregorian: cell.Gregorian(),
	}
	dp.panels.Close(dp.ID)
	if dp.OnDateSelected != nil {
		dp.OnDateSelected(dp.ID, p.Gregorian)
	}
	return p, nil
}
