package api

import (
	"strconv"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	"github.com/qaplayground/playground/internal/widgets"
)

const dateStateLayout = "2006-01-02"

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

// calendarFromForm restores the picker state the page round-trips in
// hidden fields: committed date, cursor month/year, open flag.
func calendarFromForm(c *gin.Context) *widgets.Calendar {
	selected := today()
	if parsed, err := time.ParseInLocation(dateStateLayout, c.PostForm("selected"), time.Local); err == nil {
		selected = parsed
	}

	cal := widgets.NewCalendar(selected)
	if month, err := strconv.Atoi(c.PostForm("month")); err == nil && month >= 0 && month <= 11 {
		cal.Month = month
	}
	if year, err := strconv.Atoi(c.PostForm("year")); err == nil && year > 0 {
		cal.Year = year
	}
	cal.Open = c.PostForm("open") == "1"
	return cal
}

func (r *Router) renderDatePicker(c *gin.Context, cal *widgets.Calendar, extra pongo2.Context) {
	ctx := pongo2.Context{
		"Calendar": cal,
		"Months":   widgets.PortugueseMonths,
		"Days":     widgets.PortugueseDays,
	}
	for k, v := range extra {
		ctx[k] = v
	}
	r.renderWidgetPage(c, "/datepicker", ctx)
}

func (r *Router) handleDatePickerOpen(c *gin.Context) {
	cal := calendarFromForm(c)
	cal.OpenCalendar()
	r.renderDatePicker(c, cal, nil)
}

func (r *Router) handleDatePickerClose(c *gin.Context) {
	cal := calendarFromForm(c)
	cal.Close()
	r.renderDatePicker(c, cal, nil)
}

// handleDatePickerNavigate moves the viewing cursor: unit=month|year,
// dir=-1|1. The committed date is untouched.
func (r *Router) handleDatePickerNavigate(c *gin.Context) {
	cal := calendarFromForm(c)

	dir := 1
	if c.PostForm("dir") == "-1" {
		dir = -1
	}

	switch c.PostForm("unit") {
	case "year":
		cal.NavigateYear(dir)
	case "select-month":
		if month, err := strconv.Atoi(c.PostForm("target")); err == nil {
			cal.SelectMonth(month)
		}
	default:
		cal.NavigateMonth(dir)
	}
	r.renderDatePicker(c, cal, nil)
}

// handleDatePickerSelect commits (cursor year, cursor month, day) and
// closes the calendar. Selecting while closed is a no-op re-render.
func (r *Router) handleDatePickerSelect(c *gin.Context) {
	cal := calendarFromForm(c)

	day, err := strconv.Atoi(c.PostForm("day"))
	if err != nil {
		r.renderDatePicker(c, cal, nil)
		return
	}
	if err := cal.SelectDay(day); err != nil {
		r.renderDatePicker(c, cal, nil)
		return
	}
	r.renderDatePicker(c, cal, nil)
}

func (r *Router) handleDatePickerSubmit(c *gin.Context) {
	cal := calendarFromForm(c)
	overlay := widgets.NewOverlay(widgets.DatePickerFields())

	r.renderDatePicker(c, cal, pongo2.Context{
		"OverlayRows": overlay.Rows(map[string]string{"date": cal.FormatSelected()}),
		"ShowOverlay": true,
	})
}
