package domain

import "strings"

// Icon names one glyph from the fixed icon set used on the landing page.
type Icon string

// Icon values.
const (
	IconBrain        Icon = "brain"
	IconTrendingUp   Icon = "trending-up"
	IconBarChart     Icon = "bar-chart"
	IconMessage      Icon = "message"
	IconExternalLink Icon = "external-link"
	IconSparkle      Icon = "sparkle"
	IconLink         Icon = "link"
)

// Valid checks if the icon is part of the glyph set.
func (i Icon) Valid() bool {
	switch i {
	case IconBrain, IconTrendingUp, IconBarChart, IconMessage,
		IconExternalLink, IconSparkle, IconLink:
		return true
	}
	return false
}

// ThemeToken is a gradient stop in the utility-class palette, e.g. "blue-500".
type ThemeToken string

// ThemeToken values.
const (
	ThemeBlue    ThemeToken = "blue-500"
	ThemeCyan    ThemeToken = "cyan-500"
	ThemePurple  ThemeToken = "purple-500"
	ThemePink    ThemeToken = "pink-500"
	ThemeEmerald ThemeToken = "emerald-500"
	ThemeTeal    ThemeToken = "teal-500"
)

// Valid checks if the token is part of the palette.
func (t ThemeToken) Valid() bool {
	switch t {
	case ThemeBlue, ThemeCyan, ThemePurple, ThemePink, ThemeEmerald, ThemeTeal:
		return true
	}
	return false
}

// hover returns the next darker shade of the token.
func (t ThemeToken) hover() string {
	return strings.TrimSuffix(string(t), "-500") + "-600"
}

// ColorTheme is the pair of gradient stops a card is painted with.
type ColorTheme struct {
	From ThemeToken
	To   ThemeToken
}

// Classes returns the gradient utility classes, e.g. "from-blue-500 to-cyan-500".
func (c ColorTheme) Classes() string {
	return "from-" + string(c.From) + " to-" + string(c.To)
}

// HoverClasses returns the darker gradient applied on hover.
func (c ColorTheme) HoverClasses() string {
	return "hover:from-" + c.From.hover() + " hover:to-" + c.To.hover()
}

// Agent is one entry of the directory: an external tool and its link.
type Agent struct {
	ID             string
	Name           string
	Description    string
	Icon           Icon
	DestinationURL string
	ShortLinkLabel string // optional, cosmetic
	Theme          ColorTheme
	BadgeLabel     string // optional
}

// HasBadge reports whether the card carries a badge.
func (a Agent) HasBadge() bool {
	return a.BadgeLabel != ""
}

// HasShortLink reports whether the card shows a short-link label.
func (a Agent) HasShortLink() bool {
	return a.ShortLinkLabel != ""
}
