package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSONLogin(t *testing.T, router *Router, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.GetEngine().ServeHTTP(w, req)
	return w
}

func TestLoginJSONSuccess(t *testing.T) {
	router := newTestRouter(t, nil)

	w := postJSONLogin(t, router, `{"username":"admin","password":"1234"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.NotEmpty(t, resp["token"])
	assert.Equal(t, "/playground", resp["redirect"])
}

func TestLoginJSONInvalidCredentials(t *testing.T) {
	router := newTestRouter(t, nil)

	for _, body := range []string{
		`{"username":"admin","password":"wrong"}`,
		`{"username":"intruder","password":"1234"}`,
	} {
		w := postJSONLogin(t, router, body)
		require.Equal(t, http.StatusUnauthorized, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, "Invalid credentials", resp["message"])
	}
}

func TestLoginJSONMissingFields(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		body    string
		message string
	}{
		{`{"username":"","password":""}`, `Você precisa preencher os campos "Usuário" e "Senha" para realizar o login.`},
		{`{"username":"","password":"1234"}`, "Preencha o usuário para realizar o login"},
		{`{"username":"admin","password":""}`, "Preencha a sua senha para realizar o login"},
	}

	for _, tt := range tests {
		w := postJSONLogin(t, router, tt.body)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, tt.message, resp["message"])
	}
}

func TestLoginFormSetsSessionCookie(t *testing.T) {
	router := newTestRouter(t, nil)

	form := url.Values{"username": {"admin"}, "password": {"1234"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.GetEngine().ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/playground", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "auth_token", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)

	// The cookie opens the protected area
	playground := httptest.NewRequest(http.MethodGet, "/playground", nil)
	playground.AddCookie(cookies[0])
	w2 := httptest.NewRecorder()
	router.GetEngine().ServeHTTP(w2, playground)
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestLoginFormFailureKeepsSessionUnauthenticated(t *testing.T) {
	router := newTestRouter(t, nil)

	form := url.Values{"username": {"admin"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.GetEngine().ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
	assert.Contains(t, w.Body.String(), "Usuário ou senha incorretos")

	// No session was created
	check := httptest.NewRequest(http.MethodGet, "/auth/check", nil)
	w2 := httptest.NewRecorder()
	router.GetEngine().ServeHTTP(w2, check)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["authenticated"])
}

func TestLogoutClearsCookie(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: sessionToken(t, router)})

	w := httptest.NewRecorder()
	router.GetEngine().ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "auth_token", cookies[0].Name)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestAuthCheck(t *testing.T) {
	router := newTestRouter(t, nil)

	w := getPage(t, router, "/auth/check")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["authenticated"])
	assert.Equal(t, "admin", resp["username"])
}

func TestAuthCheckWithoutSession(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/check", nil)
	req.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	router.GetEngine().ServeHTTP(w, req)

	// Anonymous callers get the answer, never the guard's login redirect
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["authenticated"])
}
