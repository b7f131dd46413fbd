package drawio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeAsset drops a named file into a fresh assets dir and returns a
// renderer over it.
func writeAsset(t *testing.T, name, content string) *Renderer {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("writing asset: %v", err)
	}
	return NewRenderer(dir)
}

func TestRenderMxgraphDiv(t *testing.T) {
	export := `<!doctype html><html><head><title>x</title></head><body>
<p>exported</p>
<div class="mxgraph" style="max-width:100%" data-mxgraph="{&quot;xml&quot;:&quot;...&quot;}"></div>
</body></html>`

	r := writeAsset(t, "fe_before.html", export)
	doc, err := r.Render("fe_before.html", 640, false)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(doc.HTML, `data-mxgraph=`) {
		t.Error("mxgraph div not extracted")
	}
	if strings.Contains(doc.HTML, "<p>exported</p>") {
		t.Error("surrounding document not discarded")
	}
	if !strings.Contains(doc.HTML, `<base href="https://viewer.diagrams.net/">`) {
		t.Error("shell missing base tag")
	}
	if !strings.Contains(doc.HTML, "viewer-static.min.js") {
		t.Error("shell missing viewer script")
	}
	if doc.Height != 640 || doc.Scrolling {
		t.Errorf("embedding parameters not carried: %+v", doc)
	}
}

func TestRenderMxgraphDivSingleQuotes(t *testing.T) {
	// Single-quoted attributes with reversed order must extract too.
	export := `<body><div data-mxgraph='{"xml":"..."}' class='mxgraph'> </div></body>`

	r := writeAsset(t, "d.html", export)
	doc, err := r.Render("d.html", 480, false)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(doc.HTML, `class='mxgraph'`) {
		t.Errorf("single-quoted div not extracted:\n%s", doc.HTML)
	}
}

func TestRenderViewerIframe(t *testing.T) {
	export := `<html><body>
<iframe frameborder="0" style="width:400px;height:300px" width="400" height="300" src="https://viewer.diagrams.net/?highlight=0000ff#Uabc"></iframe>
</body></html>`

	r := writeAsset(t, "nexus.html", export)
	doc, err := r.Render("nexus.html", 640, false)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if strings.Contains(doc.HTML, "width:400px") || strings.Contains(doc.HTML, `width="400"`) {
		t.Error("inline sizing not stripped from iframe")
	}
	if !strings.Contains(doc.HTML, `style="width:100%;height:100%;border:0"`) {
		t.Error("fill sizing not applied to iframe")
	}
	if !strings.Contains(doc.HTML, "viewer.diagrams.net/?highlight") {
		t.Error("iframe source lost")
	}
}

func TestRenderFullDocument(t *testing.T) {
	export := `<!doctype html>
<html>
<head><title>Diagram</title></head>
<body><svg></svg></body>
</html>`

	r := writeAsset(t, "keycloak.html", export)
	doc, err := r.Render("keycloak.html", 640, false)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if n := strings.Count(doc.HTML, "<base "); n != 1 {
		t.Errorf("expected exactly one base tag, got %d", n)
	}
	if !strings.Contains(doc.HTML, `<head><base href="https://viewer.diagrams.net/">`) {
		t.Error("base tag not inserted right after <head>")
	}
	if !strings.Contains(doc.HTML, "viewer-static.min.js") {
		t.Error("viewer script not appended")
	}
	if !doc.Scrolling {
		t.Error("full documents should scroll")
	}
}

func TestRenderFullDocumentKeepsExistingBase(t *testing.T) {
	export := `<html><head><base href="https://example.com/"><script src="https://viewer.diagrams.net/js/viewer-static.min.js"></script></head><body></body></html>`

	r := writeAsset(t, "d.html", export)
	doc, err := r.Render("d.html", 640, false)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if n := strings.Count(doc.HTML, "<base "); n != 1 {
		t.Errorf("base tag duplicated: %d occurrences", n)
	}
	if n := strings.Count(doc.HTML, "viewer-static.min.js"); n != 1 {
		t.Errorf("viewer script duplicated: %d occurrences", n)
	}
}

func TestRenderPassThrough(t *testing.T) {
	raw := "just some text, not a diagram at all"

	r := writeAsset(t, "odd.html", raw)
	doc, err := r.Render("odd.html", 200, false)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if doc.HTML != raw {
		t.Errorf("pass-through content modified: %q", doc.HTML)
	}
	if !doc.Scrolling {
		t.Error("pass-through should scroll")
	}
}

func TestRenderNotFound(t *testing.T) {
	r := NewRenderer(t.TempDir())

	_, err := r.Render("missing.html", 640, false)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRenderRejectsPathEscapes(t *testing.T) {
	r := NewRenderer(t.TempDir())

	for _, name := range []string{"../secret.html", "a/b.html", `..\x`, "", "."} {
		if _, err := r.Render(name, 640, false); !errors.Is(err, ErrNotFound) {
			t.Errorf("name %q: expected ErrNotFound, got %v", name, err)
		}
		if r.Renderable(name) {
			t.Errorf("name %q reported renderable", name)
		}
	}
}

func TestRenderable(t *testing.T) {
	r := writeAsset(t, "fe_after.html", "<html></html>")
	if !r.Renderable("fe_after.html") {
		t.Error("existing asset not renderable")
	}
	if r.Renderable("fe_missing.html") {
		t.Error("missing asset reported renderable")
	}
}
