package portfolio

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
)

var md = goldmark.New()

// renderMarkdown converts case-study copy to HTML. On conversion failure
// the raw text comes back escaped, so a bad content file cannot take
// down the page.
func renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
