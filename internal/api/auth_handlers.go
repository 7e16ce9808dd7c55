package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	"github.com/qaplayground/playground/internal/auth"
)

func (r *Router) handleLoginPage(c *gin.Context) {
	r.renderer.HTML(c, http.StatusOK, "pages/login.pongo2", pongo2.Context{
		"Error": c.Query("error"),
	})
}

// handleLogin handles the login form submission. JSON clients get the mock
// endpoint contract ({success:true} / 401 {success:false,message}); browser
// form posts get a session cookie and a redirect to the playground.
func (r *Router) handleLogin(c *gin.Context) {
	contentType := c.GetHeader("Content-Type")
	isJSON := strings.Contains(contentType, "application/json")

	var username, password string
	if isJSON {
		var payload struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&payload); err == nil {
			username = payload.Username
			password = payload.Password
		}
	} else {
		username = c.PostForm("username")
		password = c.PostForm("password")
	}

	if username == "" || password == "" {
		message := loginValidationMessage(username, password)
		if isJSON {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
			return
		}
		r.renderer.HTML(c, http.StatusBadRequest, "pages/login.pongo2", pongo2.Context{
			"Error":    message,
			"Username": username,
		})
		return
	}

	if err := r.credentials.Authenticate(username, password); errors.Is(err, auth.ErrInvalidCredentials) {
		// One generic message regardless of which field was wrong
		if isJSON {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		r.renderer.HTML(c, http.StatusUnauthorized, "pages/login.pongo2", pongo2.Context{
			"Error":    "Usuário ou senha incorretos",
			"Username": username,
		})
		return
	}

	token, err := r.jwtManager.GenerateToken(username)
	if err != nil {
		if isJSON {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create session"})
			return
		}
		r.renderer.HTML(c, http.StatusInternalServerError, "pages/login.pongo2", pongo2.Context{
			"Error": "Não foi possível iniciar a sessão",
		})
		return
	}

	c.SetCookie(
		r.cfg.Auth.Session.CookieName,
		token,
		r.cfg.Auth.Session.MaxAge,
		"/",
		"",
		r.cfg.Auth.Session.Secure,
		r.cfg.Auth.Session.HTTPOnly,
	)

	if isJSON {
		c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "redirect": "/playground"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/playground")
}

// handleLogout clears the session cookie unconditionally.
func (r *Router) handleLogout(c *gin.Context) {
	c.SetCookie(r.cfg.Auth.Session.CookieName, "", -1, "/", "", r.cfg.Auth.Session.Secure, r.cfg.Auth.Session.HTTPOnly)
	c.Redirect(http.StatusSeeOther, "/login")
}

// handleAuthCheck reports whether the current session is authenticated.
// The route sits outside the guarded group so anonymous callers get an
// answer instead of the guard's 401 error body.
func (r *Router) handleAuthCheck(c *gin.Context) {
	if !r.authMiddleware.IsAuthenticated(c) {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}
	username, _ := c.Get("username")
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "username": username})
}

func loginValidationMessage(username, password string) string {
	switch {
	case username == "" && password == "":
		return `Você precisa preencher os campos "Usuário" e "Senha" para realizar o login.`
	case username == "":
		return "Preencha o usuário para realizar o login"
	default:
		return "Preencha a sua senha para realizar o login"
	}
}
