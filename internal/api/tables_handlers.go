package api

import (
	"strconv"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	"github.com/qaplayground/playground/internal/widgets"
)

// tableFromForm restores the table state round-tripped in the hidden
// "state" field. Missing or corrupted state resets to the seed rows.
func tableFromForm(c *gin.Context) *widgets.EmployeeTable {
	return widgets.UnmarshalEmployeeTable(c.PostForm("state"))
}

func (r *Router) renderTable(c *gin.Context, table *widgets.EmployeeTable) {
	state, err := table.Marshal()
	if err != nil {
		c.String(500, "table state error: %v", err)
		return
	}
	r.renderWidgetPage(c, "/tables", pongo2.Context{
		"Table":       table,
		"TableState":  state,
		"Departments": widgets.Departments(),
	})
}

func formRowID(c *gin.Context) int {
	id, _ := strconv.Atoi(c.PostForm("id"))
	return id
}

func (r *Router) handleTableEdit(c *gin.Context) {
	table := tableFromForm(c)
	_ = table.BeginEdit(formRowID(c)) // unknown id re-renders unchanged
	r.renderTable(c, table)
}

// handleTableSave merges the posted draft fields into the row under edit.
func (r *Router) handleTableSave(c *gin.Context) {
	table := tableFromForm(c)
	for _, field := range []string{"nome", "sobrenome", "idade", "email", "departamento"} {
		if value, ok := c.GetPostForm(field); ok {
			_ = table.SetDraftField(field, value)
		}
	}
	_ = table.SaveEdit()
	r.renderTable(c, table)
}

func (r *Router) handleTableCancel(c *gin.Context) {
	table := tableFromForm(c)
	table.CancelEdit()
	r.renderTable(c, table)
}

func (r *Router) handleTableDeleteRequest(c *gin.Context) {
	table := tableFromForm(c)
	_ = table.RequestDelete(formRowID(c))
	r.renderTable(c, table)
}

func (r *Router) handleTableDeleteConfirm(c *gin.Context) {
	table := tableFromForm(c)
	_ = table.ConfirmDeleteRow(formRowID(c))
	r.renderTable(c, table)
}

func (r *Router) handleTableDeleteCancel(c *gin.Context) {
	table := tableFromForm(c)
	table.CancelDelete()
	r.renderTable(c, table)
}
