package widgets

import (
	"encoding/json"
	"fmt"
)

// EmployeeRow is one record of the interactive table.
type EmployeeRow struct {
	ID           int    `json:"id"`
	Nome         string `json:"nome"`
	Sobrenome    string `json:"sobrenome"`
	Idade        int    `json:"idade"`
	Email        string `json:"email"`
	Departamento string `json:"departamento"`
}

// EmployeeTable holds the table rows plus the edit / delete-confirmation
// state. At most one row is in edit mode or armed for deletion at a time.
type EmployeeTable struct {
	Rows          []EmployeeRow `json:"rows"`
	EditingID     int           `json:"editing_id,omitempty"`      // 0 = not editing
	Draft         *EmployeeRow  `json:"draft,omitempty"`           // snapshot under edit
	ConfirmDelete int           `json:"confirm_delete,omitempty"`  // 0 = no confirmation armed
}

// SeedRows are the four fixed records present after every page load.
func SeedRows() []EmployeeRow {
	return []EmployeeRow{
		{ID: 1, Nome: "Cierra", Sobrenome: "Vega", Idade: 39, Email: "cierra@example.com", Departamento: "Insurance"},
		{ID: 2, Nome: "Alden", Sobrenome: "Cantrell", Idade: 45, Email: "alden@example.com", Departamento: "Compliance"},
		{ID: 3, Nome: "Kierra", Sobrenome: "Gentry", Idade: 29, Email: "kierra@example.com", Departamento: "Legal"},
		{ID: 4, Nome: "Thomas", Sobrenome: "Crane", Idade: 35, Email: "thomas@example.com", Departamento: "Engineering"},
	}
}

// Departments are the options offered by the edit-mode select.
func Departments() []string {
	return []string{"Insurance", "Compliance", "Legal", "Engineering", "Marketing", "Sales", "HR"}
}

// NewEmployeeTable returns a table reset to the seed rows.
func NewEmployeeTable() *EmployeeTable {
	return &EmployeeTable{Rows: SeedRows()}
}

// BeginEdit snapshots the row into an editable draft. Any armed delete
// confirmation is dismissed.
func (t *EmployeeTable) BeginEdit(id int) error {
	row := t.findRow(id)
	if row == nil {
		return fmt.Errorf("row %d not found", id)
	}
	draft := *row
	t.EditingID = id
	t.Draft = &draft
	t.ConfirmDelete = 0
	return nil
}

// SetDraftField updates one field of the draft while editing.
func (t *EmployeeTable) SetDraftField(name, value string) error {
	if t.Draft == nil {
		return fmt.Errorf("no row is being edited")
	}
	switch name {
	case "nome":
		t.Draft.Nome = value
	case "sobrenome":
		t.Draft.Sobrenome = value
	case "idade":
		var idade int
		if _, err := fmt.Sscanf(value, "%d", &idade); err != nil {
			return fmt.Errorf("idade must be numeric")
		}
		t.Draft.Idade = idade
	case "email":
		t.Draft.Email = value
	case "departamento":
		t.Draft.Departamento = value
	default:
		return fmt.Errorf("unknown field %q", name)
	}
	return nil
}

// SaveEdit merges the draft back into the row matching the stored id and
// exits edit mode.
func (t *EmployeeTable) SaveEdit() error {
	if t.EditingID == 0 || t.Draft == nil {
		return fmt.Errorf("no row is being edited")
	}
	for i := range t.Rows {
		if t.Rows[i].ID == t.EditingID {
			draft := *t.Draft
			draft.ID = t.EditingID
			t.Rows[i] = draft
			break
		}
	}
	t.EditingID = 0
	t.Draft = nil
	return nil
}

// CancelEdit discards the draft without touching the row.
func (t *EmployeeTable) CancelEdit() {
	t.EditingID = 0
	t.Draft = nil
}

// RequestDelete arms the per-row confirmation. Editing state is dismissed.
func (t *EmployeeTable) RequestDelete(id int) error {
	if t.findRow(id) == nil {
		return fmt.Errorf("row %d not found", id)
	}
	t.ConfirmDelete = id
	t.EditingID = 0
	t.Draft = nil
	return nil
}

// ConfirmDeleteRow removes the armed row. The id must match the armed
// confirmation; deletion never happens in one step.
func (t *EmployeeTable) ConfirmDeleteRow(id int) error {
	if t.ConfirmDelete == 0 || t.ConfirmDelete != id {
		return fmt.Errorf("row %d is not awaiting delete confirmation", id)
	}
	for i := range t.Rows {
		if t.Rows[i].ID == id {
			t.Rows = append(t.Rows[:i], t.Rows[i+1:]...)
			break
		}
	}
	t.ConfirmDelete = 0
	return nil
}

// CancelDelete dismisses the confirmation, leaving the row set unchanged.
func (t *EmployeeTable) CancelDelete() {
	t.ConfirmDelete = 0
}

// Marshal serializes the table state for round-tripping through the form.
func (t *EmployeeTable) Marshal() (string, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("marshal table state: %w", err)
	}
	return string(data), nil
}

// UnmarshalEmployeeTable restores table state from a form field. Empty or
// corrupted state falls back to the seed rows.
func UnmarshalEmployeeTable(state string) *EmployeeTable {
	if state == "" {
		return NewEmployeeTable()
	}
	t := &EmployeeTable{}
	if err := json.Unmarshal([]byte(state), t); err != nil {
		return NewEmployeeTable()
	}
	if t.Rows == nil {
		t.Rows = []EmployeeRow{}
	}
	return t
}

func (t *EmployeeTable) findRow(id int) *EmployeeRow {
	for i := range t.Rows {
		if t.Rows[i].ID == id {
			return &t.Rows[i]
		}
	}
	return nil
}
