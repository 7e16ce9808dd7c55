package widgets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestCalendarNavigation(t *testing.T) {
	t.Run("forward from December wraps to January of next year", func(t *testing.T) {
		c := NewCalendar(date(2025, time.December, 15))
		c.OpenCalendar()
		c.NavigateMonth(1)
		assert.Equal(t, 0, c.Month)
		assert.Equal(t, 2026, c.Year)
	})

	t.Run("backward from January wraps to December of previous year", func(t *testing.T) {
		c := NewCalendar(date(2025, time.January, 15))
		c.OpenCalendar()
		c.NavigateMonth(-1)
		assert.Equal(t, 11, c.Month)
		assert.Equal(t, 2024, c.Year)
	})

	t.Run("every month navigates forward and backward consistently", func(t *testing.T) {
		for m := 0; m <= 11; m++ {
			c := &Calendar{Month: m, Year: 2025, Open: true}
			c.NavigateMonth(1)
			c.NavigateMonth(-1)
			assert.Equal(t, m, c.Month, "month %d", m)
			assert.Equal(t, 2025, c.Year, "month %d", m)
		}
	})

	t.Run("year navigation leaves month alone", func(t *testing.T) {
		c := NewCalendar(date(2025, time.June, 1))
		c.OpenCalendar()
		c.NavigateYear(1)
		assert.Equal(t, 5, c.Month)
		assert.Equal(t, 2026, c.Year)
		c.NavigateYear(-2)
		assert.Equal(t, 2024, c.Year)
	})

	t.Run("navigation never mutates the committed date", func(t *testing.T) {
		selected := date(2025, time.March, 10)
		c := NewCalendar(selected)
		c.OpenCalendar()
		c.NavigateMonth(1)
		c.NavigateMonth(1)
		c.NavigateYear(3)
		c.SelectMonth(11)
		assert.True(t, c.Selected.Equal(selected))
	})
}

func TestCalendarSelection(t *testing.T) {
	t.Run("select commits cursor year, cursor month, clicked day and closes", func(t *testing.T) {
		c := NewCalendar(date(2025, time.January, 1))
		c.OpenCalendar()
		c.NavigateMonth(1) // February 2025
		require.NoError(t, c.SelectDay(14))

		assert.True(t, c.Selected.Equal(date(2025, time.February, 14)))
		assert.False(t, c.Open)
	})

	t.Run("select while closed fails and commits nothing", func(t *testing.T) {
		selected := date(2025, time.January, 1)
		c := NewCalendar(selected)
		err := c.SelectDay(5)
		assert.ErrorIs(t, err, ErrCalendarClosed)
		assert.True(t, c.Selected.Equal(selected))
	})

	t.Run("out-of-range day is rejected", func(t *testing.T) {
		c := NewCalendar(date(2025, time.February, 1))
		c.OpenCalendar()
		assert.Error(t, c.SelectDay(30))
		assert.Error(t, c.SelectDay(0))
		assert.True(t, c.Open)
	})

	t.Run("close without selecting keeps the committed date", func(t *testing.T) {
		selected := date(2025, time.July, 4)
		c := NewCalendar(selected)
		c.OpenCalendar()
		c.NavigateMonth(-1)
		c.Close()
		assert.True(t, c.Selected.Equal(selected))
		assert.False(t, c.Open)
	})

	t.Run("open reseeds the cursor from the committed date", func(t *testing.T) {
		c := NewCalendar(date(2025, time.April, 20))
		c.OpenCalendar()
		c.NavigateMonth(1)
		c.Close()
		c.OpenCalendar()
		assert.Equal(t, 3, c.Month)
		assert.Equal(t, 2025, c.Year)
	})
}

func TestCalendarGrid(t *testing.T) {
	t.Run("day counts including leap years", func(t *testing.T) {
		cases := []struct {
			month, year, days int
		}{
			{0, 2025, 31},
			{1, 2025, 28},
			{1, 2024, 29},
			{3, 2025, 30},
			{11, 2025, 31},
		}
		for _, tc := range cases {
			c := &Calendar{Month: tc.month, Year: tc.year}
			assert.Equal(t, tc.days, c.DaysInMonth(), "month %d year %d", tc.month, tc.year)
		}
	})

	t.Run("leading blanks match weekday of day one", func(t *testing.T) {
		// October 2025 starts on a Wednesday (weekday 3)
		c := &Calendar{Month: 9, Year: 2025}
		assert.Equal(t, 3, c.FirstWeekday())

		grid := c.Grid()
		require.Len(t, grid, 3+31)
		assert.Equal(t, []int{0, 0, 0, 1}, grid[:4])
		assert.Equal(t, 31, grid[len(grid)-1])
	})

	t.Run("grid of a Sunday-starting month has no blanks", func(t *testing.T) {
		// June 2025 starts on a Sunday
		c := &Calendar{Month: 5, Year: 2025}
		grid := c.Grid()
		assert.Equal(t, 1, grid[0])
		assert.Len(t, grid, 30)
	})
}

func TestCalendarFormatting(t *testing.T) {
	c := NewCalendar(date(2025, time.October, 2))
	assert.Equal(t, "2 de Outubro, 2025", c.FormatSelected())
	assert.Equal(t, "Outubro", c.MonthName())

	assert.True(t, c.IsSelected(2))
	assert.False(t, c.IsSelected(3))
	c.OpenCalendar()
	c.NavigateMonth(1)
	assert.False(t, c.IsSelected(2), "selection highlight follows the viewing month")
}
