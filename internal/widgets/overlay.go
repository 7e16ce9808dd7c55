package widgets

import "github.com/microcosm-cc/bluemonday"

// Field describes one submitted value for the overlay: its form key, the
// label shown next to it, and an optional display formatter.
type Field struct {
	Key    string
	Label  string
	Format func(value string) string
}

// OverlayRow is one rendered label/value line.
type OverlayRow struct {
	Key   string
	Label string
	Value string
}

// Overlay converts a submitted form record into display rows. Presence of
// a key decides whether its row renders: an empty string still renders
// (with the "-" placeholder), an absent key renders nothing.
type Overlay struct {
	fields   []Field
	sanitize *bluemonday.Policy
}

func NewOverlay(fields []Field) *Overlay {
	return &Overlay{
		fields:   fields,
		sanitize: bluemonday.StrictPolicy(),
	}
}

// Rows builds the overlay rows for the submitted values, in field
// registration order. Values are sanitized before display since they echo
// raw user input back into HTML.
func (o *Overlay) Rows(values map[string]string) []OverlayRow {
	rows := make([]OverlayRow, 0, len(o.fields))
	for _, f := range o.fields {
		value, present := values[f.Key]
		if !present {
			continue
		}
		value = o.sanitize.Sanitize(value)
		if f.Format != nil {
			value = f.Format(value)
		}
		if value == "" {
			value = "-"
		}
		rows = append(rows, OverlayRow{Key: f.Key, Label: f.Label, Value: value})
	}
	return rows
}
