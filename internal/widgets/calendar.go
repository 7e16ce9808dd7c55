package widgets

import (
	"errors"
	"fmt"
	"time"
)

var ErrCalendarClosed = errors.New("calendar is not open")

// Portuguese month names, indexed 0-11 to match the cursor month.
var PortugueseMonths = []string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// Portuguese weekday abbreviations for the calendar header, Sunday first.
var PortugueseDays = []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// Calendar is the date picker state machine. The viewing cursor
// (Month/Year) is independent of the committed Selected date: navigation
// never touches Selected until a day is explicitly chosen.
type Calendar struct {
	Selected time.Time
	Month    int // 0-11, viewing cursor
	Year     int // viewing cursor
	Open     bool
}

// NewCalendar returns a closed calendar committed to the given date.
func NewCalendar(selected time.Time) *Calendar {
	return &Calendar{
		Selected: selected,
		Month:    int(selected.Month()) - 1,
		Year:     selected.Year(),
	}
}

// OpenCalendar opens the picker, seeding the cursor from the committed date.
func (c *Calendar) OpenCalendar() {
	c.Month = int(c.Selected.Month()) - 1
	c.Year = c.Selected.Year()
	c.Open = true
}

// Close dismisses the picker without committing anything.
func (c *Calendar) Close() {
	c.Open = false
}

// NavigateMonth moves the cursor by direction (-1 or +1), rolling the year
// when wrapping past January or December.
func (c *Calendar) NavigateMonth(direction int) {
	month := c.Month + direction
	if month < 0 {
		month = 11
		c.Year--
	} else if month > 11 {
		month = 0
		c.Year++
	}
	c.Month = month
}

// NavigateYear moves the cursor year independent of the month.
func (c *Calendar) NavigateYear(direction int) {
	c.Year += direction
}

// SelectMonth jumps the cursor to a specific month (0-11).
func (c *Calendar) SelectMonth(month int) {
	if month < 0 || month > 11 {
		return
	}
	c.Month = month
}

// SelectDay commits the date (cursor year, cursor month, day) and closes
// the picker. Selecting while closed is an error; the committed date is
// left untouched.
func (c *Calendar) SelectDay(day int) error {
	if !c.Open {
		return ErrCalendarClosed
	}
	if day < 1 || day > c.DaysInMonth() {
		return fmt.Errorf("day %d out of range for %s %d", day, PortugueseMonths[c.Month], c.Year)
	}
	c.Selected = time.Date(c.Year, time.Month(c.Month+1), day, 0, 0, 0, 0, time.Local)
	c.Open = false
	return nil
}

// DaysInMonth counts the days of the viewing month via day zero of the
// following month.
func (c *Calendar) DaysInMonth() int {
	return time.Date(c.Year, time.Month(c.Month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday index of day 1 of the viewing month,
// 0 = Sunday.
func (c *Calendar) FirstWeekday() int {
	return int(time.Date(c.Year, time.Month(c.Month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// Grid generates the calendar cells: leading zeros for the blank cells
// before day 1, then one entry per day of the month.
func (c *Calendar) Grid() []int {
	days := make([]int, 0, c.FirstWeekday()+c.DaysInMonth())
	for i := 0; i < c.FirstWeekday(); i++ {
		days = append(days, 0)
	}
	for day := 1; day <= c.DaysInMonth(); day++ {
		days = append(days, day)
	}
	return days
}

// IsSelected reports whether the given day of the viewing month is the
// committed date.
func (c *Calendar) IsSelected(day int) bool {
	return c.Selected.Day() == day &&
		int(c.Selected.Month())-1 == c.Month &&
		c.Selected.Year() == c.Year
}

// IsToday reports whether the given day of the viewing month is today.
func (c *Calendar) IsToday(day int) bool {
	now := time.Now()
	return now.Day() == day &&
		int(now.Month())-1 == c.Month &&
		now.Year() == c.Year
}

// FormatSelected renders the committed date as "2 de Outubro, 2025".
func (c *Calendar) FormatSelected() string {
	return fmt.Sprintf("%d de %s, %d",
		c.Selected.Day(), PortugueseMonths[int(c.Selected.Month())-1], c.Selected.Year())
}

// MonthName returns the viewing month's Portuguese name.
func (c *Calendar) MonthName() string {
	return PortugueseMonths[c.Month]
}
