package render

import (
	"fmt"
	"html"
	"html/template"

	"github.com/mtlprog/agenthub/internal/domain"
)

// glyphs holds the inner SVG markup of each icon, drawn on a 24x24 grid.
var glyphs = map[domain.Icon]string{
	domain.IconBrain: `<path d="M12 5a3 3 0 1 0-5.997.125 4 4 0 0 0-2.526 5.77 4 4 0 0 0 .556 6.588A4 4 0 1 0 12 18Z"/>` +
		`<path d="M12 5a3 3 0 1 1 5.997.125 4 4 0 0 1 2.526 5.77 4 4 0 0 1-.556 6.588A4 4 0 1 1 12 18Z"/>` +
		`<path d="M15 13a4.5 4.5 0 0 1-3-4 4.5 4.5 0 0 1-3 4"/>`,
	domain.IconTrendingUp: `<polyline points="22 7 13.5 15.5 8.5 10.5 2 17"/><polyline points="16 7 22 7 22 13"/>`,
	domain.IconBarChart:   `<path d="M3 3v18h18"/><path d="M18 17V9"/><path d="M13 17V5"/><path d="M8 17v-3"/>`,
	domain.IconMessage:    `<path d="M7.9 20A9 9 0 1 0 4 16.1L2 22Z"/>`,
	domain.IconExternalLink: `<path d="M15 3h6v6"/><path d="M10 14 21 3"/>` +
		`<path d="M18 13v6a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2h6"/>`,
	domain.IconSparkle: `<path d="m12 3-1.912 5.813a2 2 0 0 1-1.275 1.275L3 12l5.813 1.912a2 2 0 0 1 1.275 1.275L12 21l1.912-5.813a2 2 0 0 1 1.275-1.275L21 12l-5.813-1.912a2 2 0 0 1-1.275-1.275L12 3Z"/>` +
		`<path d="M5 3v4"/><path d="M19 17v4"/><path d="M3 5h4"/><path d="M17 19h4"/>`,
	domain.IconLink: `<path d="M10 13a5 5 0 0 0 7.54.54l3-3a5 5 0 0 0-7.07-7.07l-1.72 1.71"/>` +
		`<path d="M14 11a5 5 0 0 0-7.54-.54l-3 3a5 5 0 0 0 7.07 7.07l1.71-1.71"/>`,
}

// iconSVG returns the inline SVG for icon. Unknown icons render as an empty
// svg element so a bad directory entry never breaks the page.
func iconSVG(icon domain.Icon, class string) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" class="%s" data-icon="%s" aria-hidden="true">%s</svg>`,
		html.EscapeString(class), html.EscapeString(string(icon)), glyphs[icon],
	))
}

// iconFunc is the template helper: {{icon "external-link" "w-4 h-4"}}.
func iconFunc(name, class string) template.HTML {
	return iconSVG(domain.Icon(name), class)
}
