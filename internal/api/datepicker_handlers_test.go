package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calendarForm(selected, month, year, open string) url.Values {
	return url.Values{
		"selected": {selected},
		"month":    {month},
		"year":     {year},
		"open":     {open},
	}
}

func TestDatePickerOpenShowsCalendar(t *testing.T) {
	router := newTestRouter(t, nil)

	w := postForm(t, router, "/datepicker/open", calendarForm("2025-10-02", "9", "2025", "0"))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `data-test-id="calendar-modal"`)
	assert.Contains(t, body, "Outubro")
	assert.Contains(t, body, `data-test-id="current-year">2025`)
}

func TestDatePickerNavigateMonthWrapsYear(t *testing.T) {
	router := newTestRouter(t, nil)

	// December forward rolls into January of the next year
	w := postForm(t, router, "/datepicker/navigate", mergeValues(
		calendarForm("2025-10-02", "11", "2025", "1"),
		url.Values{"unit": {"month"}, "dir": {"1"}},
	))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Janeiro")
	assert.Contains(t, body, `data-test-id="current-year">2026`)
	// The committed date is untouched
	assert.Contains(t, body, "2 de Outubro, 2025")
}

func TestDatePickerNavigateYear(t *testing.T) {
	router := newTestRouter(t, nil)

	w := postForm(t, router, "/datepicker/navigate", mergeValues(
		calendarForm("2025-10-02", "9", "2025", "1"),
		url.Values{"unit": {"year"}, "dir": {"-1"}},
	))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-test-id="current-year">2024`)
}

func TestDatePickerSelectMonth(t *testing.T) {
	router := newTestRouter(t, nil)

	w := postForm(t, router, "/datepicker/navigate", mergeValues(
		calendarForm("2025-10-02", "9", "2025", "1"),
		url.Values{"unit": {"select-month"}, "target": {"0"}},
	))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Janeiro")
}

func TestDatePickerSelectDayCommitsAndCloses(t *testing.T) {
	router := newTestRouter(t, nil)

	w := postForm(t, router, "/datepicker/select", mergeValues(
		calendarForm("2025-10-02", "2", "2026", "1"),
		url.Values{"day": {"15"}},
	))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "15 de Março, 2026")
	// Calendar closed after committing
	assert.NotContains(t, body, `data-test-id="calendar-modal"`)
}

func TestDatePickerSelectWhileClosedIsIgnored(t *testing.T) {
	router := newTestRouter(t, nil)

	w := postForm(t, router, "/datepicker/select", mergeValues(
		calendarForm("2025-10-02", "9", "2025", "0"),
		url.Values{"day": {"15"}},
	))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2 de Outubro, 2025")
}

func TestDatePickerSubmitShowsFormattedDate(t *testing.T) {
	router := newTestRouter(t, nil)

	w := postForm(t, router, "/datepicker/submit", calendarForm("2025-10-02", "9", "2025", "0"))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Dados Enviados")
	assert.Contains(t, body, `data-test-id="submitted-date"`)
	assert.Contains(t, body, "2 de Outubro, 2025")
}

func mergeValues(values ...url.Values) url.Values {
	merged := url.Values{}
	for _, v := range values {
		for key, items := range v {
			merged[key] = append(merged[key], items...)
		}
	}
	return merged
}
