package web

import (
	"html"
	"html/template"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var markdownRenderer = blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
	Flags: blackfriday.SkipHTML,
})

// renderMarkdown turns a single markdown line into HTML. Raw HTML in the
// input is escaped first, so labels coming back from the model cannot
// inject markup.
func renderMarkdown(input string) template.HTML {
	output := blackfriday.Run([]byte(html.EscapeString(input)),
		blackfriday.WithExtensions(blackfriday.NoIntraEmphasis),
		blackfriday.WithRenderer(markdownRenderer))

	return template.HTML(strings.TrimSpace(string(output)))
}
