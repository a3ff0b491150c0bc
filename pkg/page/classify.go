package page

import "strings"

// Kind is the classification of a single page line
type Kind int

const (
	// Unclassified lines match no marker and are not rendered
	Unclassified Kind = iota
	// Title lines start with "# "
	Title
	// Description lines start with "> "
	Description
	// Bullet lines start with "- "
	Bullet
	// Example lines are wrapped in backticks
	Example
	// Blank lines are empty
	Blank
)

// Line markers
const (
	TitlePrefix       = "# "
	DescriptionPrefix = "> "
	BulletPrefix      = "- "
	ExampleDelimiter  = '`'
)

// String returns a lowercase name for the kind
func (k Kind) String() string {
	switch k {
	case Title:
		return "title"
	case Description:
		return "description"
	case Bullet:
		return "bullet"
	case Example:
		return "example"
	case Blank:
		return "blank"
	default:
		return "unclassified"
	}
}

// Classify determines the kind of line and returns it with its marker stripped.
// Prefixes are tested in order: title, description, bullet, example envelope,
// then blank. Blank and unclassified lines are returned unchanged.
func Classify(line string) (Kind, string) {
	switch {
	case strings.HasPrefix(line, TitlePrefix):
		return Title, line[len(TitlePrefix):]
	case strings.HasPrefix(line, DescriptionPrefix):
		return Description, line[len(DescriptionPrefix):]
	case strings.HasPrefix(line, BulletPrefix):
		return Bullet, line[len(BulletPrefix):]
	case len(line) >= 2 && line[0] == ExampleDelimiter && line[len(line)-1] == ExampleDelimiter:
		return Example, line[1 : len(line)-1]
	case line == "":
		return Blank, line
	default:
		return Unclassified, line
	}
}
