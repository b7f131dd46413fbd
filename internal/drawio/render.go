// Package drawio turns draw.io HTML exports into self-contained documents
// suitable for embedding in an iframe. Exports come in three shapes: a
// tagged mxgraph div, an iframe pointing at the hosted viewer, or a full
// standalone document. Anything else passes through untouched.
package drawio

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrNotFound is returned when the named asset is missing or unreadable.
// It is the renderer's only failure mode; once an asset is read, some
// document always comes back.
var ErrNotFound = errors.New("diagram asset not found")

const (
	// ViewerBase is the host relative references inside exports resolve
	// against.
	ViewerBase = "https://viewer.diagrams.net/"
	// ViewerScript renders mxgraph divs client-side.
	ViewerScript = "https://viewer.diagrams.net/js/viewer-static.min.js"
)

// Document is a renderable HTML document plus the embedding parameters
// the caller asked for. It has no lifecycle: assembled per call,
// consumed once.
type Document struct {
	HTML      string
	Height    int
	Scrolling bool
}

// Renderer reads exports from a single assets directory. It holds no
// other state; Render is a pure classify-and-transform step per call.
type Renderer struct {
	dir string
}

// NewRenderer returns a Renderer reading from dir.
func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir}
}

var (
	// Empty container divs are mxgraph candidates; the class and data
	// attributes are checked separately so their order in the tag does
	// not matter. Both quote styles occur in real exports.
	emptyDivRe     = regexp.MustCompile(`(?is)<div[^>]*>\s*</div>`)
	mxgraphClassRe = regexp.MustCompile(`(?i)class=(?:"[^"]*\bmxgraph\b[^"]*"|'[^']*\bmxgraph\b[^']*')`)
	mxgraphDataRe  = regexp.MustCompile(`(?i)data-mxgraph=(?:"[^"]*"|'[^']*')`)

	viewerIframeRe = regexp.MustCompile(`(?is)<iframe[^>]+src=(?:"[^"]*viewer\.diagrams\.net[^"]*"|'[^']*viewer\.diagrams\.net[^']*')[^>]*>\s*</iframe>`)

	styleAttrRe  = regexp.MustCompile(`(?i)\sstyle=(?:"[^"]*"|'[^']*')`)
	widthAttrRe  = regexp.MustCompile(`(?i)\swidth=(?:"[^"]*"|'[^']*')`)
	heightAttrRe = regexp.MustCompile(`(?i)\sheight=(?:"[^"]*"|'[^']*')`)

	headOpenRe = regexp.MustCompile(`(?i)<head[^>]*>`)
)

// Render resolves name inside the assets directory, classifies the
// export and assembles an embeddable document. Missing or unreadable
// assets report ErrNotFound; everything after a successful read
// degrades to best-effort rather than failing.
func (r *Renderer) Render(name string, height int, scrolling bool) (*Document, error) {
	if !safeName(name) {
		return nil, ErrNotFound
	}
	raw, err := os.ReadFile(filepath.Join(r.dir, name))
	if err != nil {
		return nil, ErrNotFound
	}
	content := string(raw)

	// Case 1: mxgraph div export.
	if div, ok := extractMxgraphDiv(content); ok {
		return &Document{HTML: wrap(div), Height: height, Scrolling: scrolling}, nil
	}

	// Case 2: hosted-viewer iframe export.
	if frame, ok := extractViewerIframe(content); ok {
		return &Document{HTML: wrap(frame), Height: height, Scrolling: scrolling}, nil
	}

	// Case 3: full HTML export. Make sure relative references and the
	// viewer script resolve, then embed as-is.
	if strings.Contains(strings.ToLower(content), "<html") {
		doc := ensureViewerScript(ensureBaseTag(content))
		return &Document{HTML: doc, Height: height, Scrolling: true}, nil
	}

	// Unknown shape: hand the content to the browser untouched.
	return &Document{HTML: content, Height: height, Scrolling: true}, nil
}

// Renderable reports whether name would render, without assembling the
// document. Callers use it to decide between the iframe and an image
// fallback.
func (r *Renderer) Renderable(name string) bool {
	if !safeName(name) {
		return false
	}
	_, err := os.Stat(filepath.Join(r.dir, name))
	return err == nil
}

// safeName rejects names that would escape the assets directory.
func safeName(name string) bool {
	if name == "" || name == "." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return false
	}
	return true
}

// extractMxgraphDiv finds the container div carrying the serialized
// diagram and discards the rest of the document.
func extractMxgraphDiv(content string) (string, bool) {
	for _, div := range emptyDivRe.FindAllString(content, -1) {
		if mxgraphClassRe.MatchString(div) && mxgraphDataRe.MatchString(div) {
			return div, true
		}
	}
	return "", false
}

// extractViewerIframe finds a hosted-viewer frame, strips its inline
// sizing and re-applies a rule that fills the container.
func extractViewerIframe(content string) (string, bool) {
	frame := viewerIframeRe.FindString(content)
	if frame == "" {
		return "", false
	}
	frame = styleAttrRe.ReplaceAllString(frame, "")
	frame = widthAttrRe.ReplaceAllString(frame, "")
	frame = heightAttrRe.ReplaceAllString(frame, "")
	frame = strings.Replace(frame, "<iframe", `<iframe style="width:100%;height:100%;border:0"`, 1)
	return frame, true
}

// wrap assembles the minimal shell around an extracted fragment:
// UTF-8, the viewer base and script, and CSS forcing the fragment to
// fill the frame.
func wrap(fragment string) string {
	var b strings.Builder
	b.WriteString("<!doctype html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<base href=\"" + ViewerBase + "\">\n")
	b.WriteString("<script src=\"" + ViewerScript + "\"></script>\n")
	b.WriteString("<style>html,body,#holder{height:100%;margin:0} #holder>div{height:100%}</style>\n")
	b.WriteString("</head>\n<body>\n<div id=\"holder\">")
	b.WriteString(fragment)
	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}

// ensureBaseTag inserts a <base> right after the opening head tag unless
// the document already carries one.
func ensureBaseTag(doc string) string {
	if strings.Contains(strings.ToLower(doc), "<base ") {
		return doc
	}
	loc := headOpenRe.FindStringIndex(doc)
	if loc == nil {
		return doc
	}
	return doc[:loc[1]] + `<base href="` + ViewerBase + `">` + doc[loc[1]:]
}

// ensureViewerScript appends the viewer script before </head> unless a
// reference is already present.
func ensureViewerScript(doc string) string {
	if strings.Contains(strings.ToLower(doc), "viewer-static.min.js") {
		return doc
	}
	i := strings.Index(strings.ToLower(doc), "</head>")
	if i < 0 {
		return doc
	}
	return doc[:i] + `<script src="` + ViewerScript + `"></script>` + doc[i:]
}
