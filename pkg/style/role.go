package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/pageprint/pkg/errors"
)

// Role is the semantic styling category of a line or inline span
type Role int

const (
	// RoleTitle styles the page title line
	RoleTitle Role = iota
	// RoleDescription styles description lines
	RoleDescription
	// RoleBullet styles usage bullets
	RoleBullet
	// RoleExample styles literal text of command examples
	RoleExample
	// RoleURL styles <url> spans inside descriptions
	RoleURL
	// RoleInlineCode styles backtick spans inside descriptions and bullets
	RoleInlineCode
	// RolePlaceholder styles {{placeholder}} spans inside examples
	RolePlaceholder
)

// Roles lists every role in declaration order
var Roles = []Role{
	RoleTitle,
	RoleDescription,
	RoleBullet,
	RoleExample,
	RoleURL,
	RoleInlineCode,
	RolePlaceholder,
}

var roleNames = map[Role]string{
	RoleTitle:       "title",
	RoleDescription: "description",
	RoleBullet:      "bullet",
	RoleExample:     "example",
	RoleURL:         "url",
	RoleInlineCode:  "inline_code",
	RolePlaceholder: "placeholder",
}

// String returns the configuration key of the role
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// ParseRole parses a configuration key into a Role
func ParseRole(s string) (Role, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for role, name := range roleNames {
		if name == key {
			return role, nil
		}
	}
	return 0, errors.Newf(errors.ErrInvalidInput, "unknown style role: %s", s)
}
