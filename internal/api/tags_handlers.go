package api

import (
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	"github.com/qaplayground/playground/internal/widgets"
)

// tagListFromForm restores the tag list from the repeated hidden "tags"
// fields the page round-trips.
func tagListFromForm(c *gin.Context) *widgets.TagList {
	return widgets.NewTagList(c.PostFormArray("tags")...)
}

// handleTagsAdd commits the input field as a new tag (the page posts this
// on Enter). Rejected adds re-render unchanged.
func (r *Router) handleTagsAdd(c *gin.Context) {
	list := tagListFromForm(c)
	input := c.PostForm("tag")

	ctx := pongo2.Context{"Tags": list.Tags()}
	if list.Add(input) {
		ctx["Tags"] = list.Tags()
		ctx["Input"] = "" // clear the field after a successful add
	} else {
		ctx["Input"] = input
	}
	r.renderWidgetPage(c, "/tags", ctx)
}

func (r *Router) handleTagsRemove(c *gin.Context) {
	list := tagListFromForm(c)

	// The clicked remove button precedes the text field in the form, so
	// "tag" carries [removed value, pending input text].
	values := c.PostFormArray("tag")
	var target, input string
	if len(values) > 0 {
		target = values[0]
	}
	if len(values) > 1 {
		input = values[1]
	}

	list.Remove(target)
	r.renderWidgetPage(c, "/tags", pongo2.Context{
		"Tags":  list.Tags(),
		"Input": input,
	})
}

func (r *Router) handleTagsSubmit(c *gin.Context) {
	list := tagListFromForm(c)
	overlay := widgets.NewOverlay(widgets.TagsFields())

	r.renderWidgetPage(c, "/tags", pongo2.Context{
		"Tags":        list.Tags(),
		"OverlayRows": overlay.Rows(map[string]string{"tags": strings.Join(list.Tags(), ", ")}),
		"ShowOverlay": true,
	})
}
