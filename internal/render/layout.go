package render

import (
	"fmt"
	"strings"

	"github.com/mtlprog/agenthub/internal/domain"
)

// Layout selects the spacing density of the page.
type Layout string

// Layout values.
const (
	LayoutComfortable Layout = "comfortable"
	LayoutCompact     Layout = "compact"
)

// ParseLayout converts a flag value to a Layout. Empty means comfortable.
func ParseLayout(s string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(s))) {
	case "", LayoutComfortable:
		return LayoutComfortable, nil
	case LayoutCompact:
		return LayoutCompact, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownLayout, s)
	}
}

// layoutClasses are the utility classes that differ between layouts.
type layoutClasses struct {
	Container string
	Header    string
	Grid      string
	Card      string
	IconSize  string
}

func (l Layout) classes() layoutClasses {
	if l == LayoutCompact {
		return layoutClasses{
			Container: "px-4 py-10",
			Header:    "mb-12",
			Grid:      "gap-6 mb-10",
			Card:      "p-6",
			IconSize:  "w-10 h-10",
		}
	}
	return layoutClasses{
		Container: "px-6 py-16",
		Header:    "mb-20",
		Grid:      "gap-8 mb-16",
		Card:      "p-8",
		IconSize:  "w-12 h-12",
	}
}
