package api

import (
	"errors"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	"github.com/qaplayground/playground/internal/cep"
	"github.com/qaplayground/playground/internal/widgets"
)

// handleCEPSearch validates the postal code and performs a single lookup.
// Failures are terminal per attempt: the page re-renders with an inline
// error and no address fields.
func (r *Router) handleCEPSearch(c *gin.Context) {
	raw := c.PostForm("cep")
	formatted := cep.Format(raw)

	ctx := pongo2.Context{"CEPInput": formatted}

	if !cep.Valid(raw) {
		ctx["Error"] = cep.ErrInvalidCEP.Error()
		r.renderWidgetPage(c, "/cep", ctx)
		return
	}

	addr, err := r.cepClient.Lookup(c.Request.Context(), raw)
	if err != nil {
		switch {
		case errors.Is(err, cep.ErrNotFound):
			ctx["Error"] = cep.ErrNotFound.Error()
		default:
			ctx["Error"] = cep.ErrLookupFailed.Error()
		}
		r.renderWidgetPage(c, "/cep", ctx)
		return
	}

	ctx["Address"] = addr
	r.renderWidgetPage(c, "/cep", ctx)
}

func (r *Router) handleCEPSubmit(c *gin.Context) {
	overlay := widgets.NewOverlay(widgets.CEPFields())

	values := map[string]string{"cep": c.PostForm("cep")}
	// Address fields only render when a lookup populated them
	for _, key := range []string{"logradouro", "localidade", "uf"} {
		if value, ok := c.GetPostForm(key); ok {
			values[key] = value
		}
	}

	ctx := pongo2.Context{
		"CEPInput":    c.PostForm("cep"),
		"OverlayRows": overlay.Rows(values),
		"ShowOverlay": true,
	}
	if values["logradouro"] != "" || values["localidade"] != "" || values["uf"] != "" {
		ctx["Address"] = &cep.Address{
			CEP:        values["cep"],
			Logradouro: values["logradouro"],
			Localidade: values["localidade"],
			UF:         values["uf"],
		}
	}
	r.renderWidgetPage(c, "/cep", ctx)
}
