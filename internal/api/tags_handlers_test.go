package api

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsAddAppendsTag(t *testing.T) {
	router := newTestRouter(t, nil)

	w := postForm(t, router, "/tags/add", url.Values{
		"tags": {"smoke"},
		"tag":  {"regression"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `name="tags" value="smoke"`)
	assert.Contains(t, body, `name="tags" value="regression"`)
	// Input cleared after a successful add
	assert.NotContains(t, body, `value="regression" autocomplete`)
}

func TestTagsAddRejectsDuplicateAndKeepsInput(t *testing.T) {
	router := newTestRouter(t, nil)

	w := postForm(t, router, "/tags/add", url.Values{
		"tags": {"smoke"},
		"tag":  {"smoke"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	// Still exactly one hidden tag field
	assert.Equal(t, 1, strings.Count(body, `name="tags" value="smoke"`))
	// Rejected input stays in the field
	assert.Contains(t, body, `placeholder="Digite e pressione Enter" value="smoke"`)
}

func TestTagsAddTrimsWhitespace(t *testing.T) {
	router := newTestRouter(t, nil)

	w := postForm(t, router, "/tags/add", url.Values{
		"tag": {"  e2e  "},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="tags" value="e2e"`)
}

func TestTagsAddIgnoresEmptyInput(t *testing.T) {
	router := newTestRouter(t, nil)

	w := postForm(t, router, "/tags/add", url.Values{
		"tags": {"smoke"},
		"tag":  {"   "},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, strings.Count(w.Body.String(), `name="tags" value=`))
}

func TestTagsRemoveDeletesOnlyExactMatch(t *testing.T) {
	router := newTestRouter(t, nil)

	w := postForm(t, router, "/tags/remove", url.Values{
		"tags": {"smoke", "regression", "e2e"},
		"tag":  {"regression"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `name="tags" value="smoke"`)
	assert.Contains(t, body, `name="tags" value="e2e"`)
	assert.NotContains(t, body, `name="tags" value="regression"`)
}

func TestTagsRemoveKeepsPendingInput(t *testing.T) {
	router := newTestRouter(t, nil)

	// A browser posts the clicked button's value first, then the text field
	w := postForm(t, router, "/tags/remove", url.Values{
		"tags": {"smoke", "e2e"},
		"tag":  {"smoke", "regr"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.NotContains(t, body, `name="tags" value="smoke"`)
	assert.Contains(t, body, `placeholder="Digite e pressione Enter" value="regr"`)
}

func TestTagsSubmitShowsJoinedTags(t *testing.T) {
	router := newTestRouter(t, nil)

	w := postForm(t, router, "/tags/submit", url.Values{
		"tags": {"smoke", "e2e"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Dados Enviados")
	assert.Contains(t, body, "smoke, e2e")
}
