// Package static embeds the landing page template and its stylesheet.
package static

import _ "embed"

// PageTemplate is the html/template source of the landing page.
//
//go:embed page.html.tmpl
var PageTemplate string

// Styles holds the keyframes and animation helpers the utility classes lack.
//
//go:embed styles.css
var Styles string
