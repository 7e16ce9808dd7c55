package api

import (
	"net/http"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	"github.com/qaplayground/playground/internal/catalog"
	"github.com/qaplayground/playground/internal/widgets"
)

// pageHandler renders a catalog page with its default (empty) form state.
func (r *Router) pageHandler(page catalog.Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := r.pageContext(c, page.Title)
		ctx["Breadcrumb"] = page.Title

		switch page.Route {
		case "/datepicker":
			ctx["Calendar"] = widgets.NewCalendar(today())
			ctx["Months"] = widgets.PortugueseMonths
			ctx["Days"] = widgets.PortugueseDays
		case "/tables":
			table := widgets.NewEmployeeTable()
			state, _ := table.Marshal()
			ctx["Table"] = table
			ctx["TableState"] = state
			ctx["Departments"] = widgets.Departments()
		case "/tags":
			ctx["Tags"] = []string{}
		case "/select":
			ctx["Frameworks"] = selectFrameworks()
			ctx["Languages"] = selectLanguages()
		case "/cli-commands":
			ctx["Commands"] = catalog.CLICommands()
		case "/browser-commands":
			ctx["Categories"] = catalog.BrowserCategories()
			if id := c.Query("cmd"); id != "" {
				if cmd, category, ok := catalog.FindBrowserCommand(id); ok {
					ctx["Detail"] = cmd
					ctx["DetailCategory"] = category
				}
			}
		}

		r.renderer.HTML(c, http.StatusOK, page.Template, ctx)
	}
}

func (r *Router) handlePlayground(c *gin.Context) {
	ctx := r.pageContext(c, "Playground")
	r.renderer.HTML(c, http.StatusOK, "pages/playground.pongo2", ctx)
}

// submitHandler echoes the submitted values back through the overlay for
// pages whose state is a flat field record. Only keys present in the
// submission produce rows.
func (r *Router) submitHandler(route string, fields []widgets.Field) gin.HandlerFunc {
	overlay := widgets.NewOverlay(fields)
	return func(c *gin.Context) {
		page, ok := r.catalog.ByRoute(route)
		if !ok {
			c.String(http.StatusNotFound, "unknown page")
			return
		}

		values := map[string]string{}
		if err := c.Request.ParseMultipartForm(1 << 20); err != nil {
			_ = c.Request.ParseForm()
		}
		for key, posted := range c.Request.PostForm {
			values[key] = strings.Join(posted, ", ")
		}

		ctx := r.pageContext(c, page.Title)
		ctx["Breadcrumb"] = page.Title
		ctx["OverlayRows"] = overlay.Rows(values)
		ctx["ShowOverlay"] = true
		if route == "/select" {
			ctx["Frameworks"] = selectFrameworks()
			ctx["Languages"] = selectLanguages()
		}
		r.renderer.HTML(c, http.StatusOK, page.Template, ctx)
	}
}

// renderWidgetPage re-renders a widget page with handler-supplied state.
func (r *Router) renderWidgetPage(c *gin.Context, route string, extra pongo2.Context) {
	page, ok := r.catalog.ByRoute(route)
	if !ok {
		c.String(http.StatusNotFound, "unknown page")
		return
	}

	ctx := r.pageContext(c, page.Title)
	ctx["Breadcrumb"] = page.Title
	for k, v := range extra {
		ctx[k] = v
	}
	r.renderer.HTML(c, http.StatusOK, page.Template, ctx)
}

func selectFrameworks() []map[string]string {
	return []map[string]string{
		{"value": "jest", "label": "Jest"},
		{"value": "mocha", "label": "Mocha"},
		{"value": "cypress", "label": "Cypress"},
		{"value": "playwright", "label": "Playwright"},
		{"value": "robot-framework", "label": "Robot Framework"},
		{"value": "jasmine", "label": "Jasmine"},
		{"value": "testcafe", "label": "TestCafe"},
		{"value": "puppeteer", "label": "Puppeteer"},
		{"value": "nightwatch", "label": "Nightwatch"},
	}
}

func selectLanguages() []map[string]string {
	return []map[string]string{
		{"value": "javascript", "label": "JavaScript"},
		{"value": "python", "label": "Python"},
		{"value": "java", "label": "Java"},
		{"value": "csharp", "label": "C#"},
		{"value": "ruby", "label": "Ruby"},
		{"value": "go", "label": "Go"},
		{"value": "php", "label": "PHP"},
		{"value": "typescript", "label": "TypeScript"},
	}
}
