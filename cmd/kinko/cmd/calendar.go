package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kinko/pms/jalali"
	"github.com/kinko/pms/persian"
	"github.com/kinko/pms/widget"
	"github.com/spf13/cobra"
)

var weekdayHeader = []string{"ش", "ی", "د", "س", "چ", "پ", "ج"}

func newCalendarCmd(a *app) *cobra.Command {
	var pick int

	cmd := &cobra.Command{
		Use:   "calendar [year month]",
		Short: "Print a Jalali month",
		Long: `Print the month view of the date picker. Without arguments the
current month is shown and today is marked with *.

Examples:
  kinko calendar
  kinko calendar 1402 7 --pick 5`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var panels widget.Panels
			dp, err := widget.NewDatePicker(&panels, "datepicker-cli")
			if err != nil {
				return err
			}
			dp.OnDateSelected = func(id widget.ID, g string) {
				a.log.Debug("date selected", "picker", id, "gregorian", g)
			}

			if len(args) == 2 {
				jy, err := strconv.Atoi(persian.ToLatinDigits(args[0]))
				if err != nil {
					return fmt.Errorf("year %q: %w", args[0], jalali.ErrInvalidDate)
				}
				jm, err := strconv.Atoi(persian.ToLatinDigits(args[1]))
				if err != nil {
					return fmt.Errorf("month %q: %w", args[1], jalali.ErrInvalidDate)
				}
				if err := dp.Show(jy, jm); err != nil {
					return err
				}
			}

			renderGrid(out, dp.Grid())

			if pick > 0 {
				p, err := dp.Pick(pick)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\n%s = %s\n", p.Display, p.Gregorian)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&pick, "pick", 0, "print the Gregorian date of this day")
	return cmd
}

func renderGrid(w io.Writer, g jalali.Grid) {
	fmt.Fprintln(w, g.Label())
	fmt.Fprintln(w, strings.Join(weekdayHeader, "   "))

	col := 0
	line := func(s string) {
		fmt.Fprint(w, s)
		col++
		if col == 7 {
			fmt.Fprintln(w)
			col = 0
		}
	}
	for i := 0; i < g.Padding; i++ {
		line("    ")
	}
	for _, c := range g.Days {
		mark := " "
		if c.Today {
			mark = "*"
		}
		line(fmt.Sprintf("%3s%s", c.Label(), mark))
	}
	if col != 0 {
		fmt.Fprintln(w)
	}
}
