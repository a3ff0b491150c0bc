// Package style provides the paint capabilities used to render pages.
//
// A style is opaque to the renderer: all it can do is Paint a piece of text.
// Tables are built from a YAML theme with adaptive colors and bound to a
// lipgloss renderer, so the same theme degrades to plain text when the
// output is not a color terminal.
package style

// Painter applies a style to text
type Painter interface {
	Paint(text string) string
}

// PainterFunc adapts a plain function to the Painter interface
type PainterFunc func(string) string

// Paint calls f(text)
func (f PainterFunc) Paint(text string) string {
	return f(text)
}

// plain leaves text untouched
var plain = PainterFunc(func(s string) string { return s })

// Table holds one painter per role. It is read-only once built.
type Table struct {
	Title       Painter
	Description Painter
	Bullet      Painter
	Example     Painter
	URL         Painter
	InlineCode  Painter
	Placeholder Painter
}

// Plain returns a table whose painters return text unchanged
func Plain() Table {
	return Table{
		Title:       plain,
		Description: plain,
		Bullet:      plain,
		Example:     plain,
		URL:         plain,
		InlineCode:  plain,
		Placeholder: plain,
	}
}

// Get returns the painter for a role. Unset entries and unknown roles paint plain.
func (t Table) Get(r Role) Painter {
	var p Painter
	switch r {
	case RoleTitle:
		p = t.Title
	case RoleDescription:
		p = t.Description
	case RoleBullet:
		p = t.Bullet
	case RoleExample:
		p = t.Example
	case RoleURL:
		p = t.URL
	case RoleInlineCode:
		p = t.InlineCode
	case RolePlaceholder:
		p = t.Placeholder
	}
	if p == nil {
		return plain
	}
	return p
}

// Set returns a copy of the table with the painter for r replaced
func (t Table) Set(r Role, p Painter) Table {
	switch r {
	case RoleTitle:
		t.Title = p
	case RoleDescription:
		t.Description = p
	case RoleBullet:
		t.Bullet = p
	case RoleExample:
		t.Example = p
	case RoleURL:
		t.URL = p
	case RoleInlineCode:
		t.InlineCode = p
	case RolePlaceholder:
		t.Placeholder = p
	}
	return t
}
