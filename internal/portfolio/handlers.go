package portfolio

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-chi/chi/v5"
)

// panelView is one before/after half, ready for the template.
type panelView struct {
	Heading string
	Embed   template.HTML
	Bullets template.HTML
	KPIs    []KPI
}

// caseView is one case study, ready for the template.
type caseView struct {
	Title      string
	Panels     []panelView
	FlowTitle  string
	Flow       template.HTML
	HighTitle  string
	Highlights template.HTML
}

// pageView feeds the index template.
type pageView struct {
	Title   string
	Tagline string
	Cases   []caseView
	Resume  string
}

func (p *Portfolio) handleIndex(w http.ResponseWriter, r *http.Request) {
	view := pageView{
		Title:   p.content.Title,
		Tagline: p.content.Tagline,
		Resume:  p.content.Resume,
	}

	for _, cs := range p.content.Cases {
		cv := caseView{Title: cs.Title}
		for _, panel := range cs.Panels {
			cv.Panels = append(cv.Panels, panelView{
				Heading: panel.Heading,
				Embed:   p.embedFor(panel),
				Bullets: renderMarkdown(bulletList(panel.Bullets)),
				KPIs:    panel.KPIs,
			})
		}
		if cs.Flow != "" {
			cv.FlowTitle = orDefault(cs.FlowTitle, "Details")
			cv.Flow = renderMarkdown(cs.Flow)
		}
		if cs.Highlights != "" {
			cv.HighTitle = orDefault(cs.HighTitle, "Highlights")
			cv.Highlights = renderMarkdown(cs.Highlights)
		}
		view.Cases = append(view.Cases, cv)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, view); err != nil {
		http.Error(w, "rendering page", http.StatusInternalServerError)
	}
}

// embedFor picks the embed for a panel: diagram frame when the export
// renders, image fallback when one exists, inline warning otherwise.
func (p *Portfolio) embedFor(panel Panel) template.HTML {
	doc, err := p.renderer.Render(panel.Diagram, panel.Height, false)
	if err == nil {
		scroll := "no"
		if doc.Scrolling {
			scroll = "yes"
		}
		src := fmt.Sprintf("/diagram/%s?h=%d", url.PathEscape(panel.Diagram), panel.Height)
		return template.HTML(fmt.Sprintf(
			`<iframe src="%s" style="width:100%%;height:%dpx;border:0" scrolling="%s" sandbox="allow-scripts allow-same-origin" loading="lazy"></iframe>`,
			src, panel.Height, scroll))
	}

	if panel.Fallback != "" {
		if _, err := os.Stat(filepath.Join(p.assetsDir, panel.Fallback)); err == nil {
			return template.HTML(fmt.Sprintf(`<img src="/assets/%s" alt="%s">`,
				url.PathEscape(panel.Fallback), template.HTMLEscapeString(panel.Heading)))
		}
	}

	return template.HTML(fmt.Sprintf(`<div class="warn">Diagram not found or unreadable: assets/%s</div>`,
		template.HTMLEscapeString(panel.Diagram)))
}

func (p *Portfolio) handleDiagram(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	height := defaultHeight
	if h, err := strconv.Atoi(r.URL.Query().Get("h")); err == nil && h > 0 {
		height = h
	}
	scroll := r.URL.Query().Get("scroll") == "1"

	doc, err := p.renderer.Render(name, height, scroll)
	if err != nil {
		// ErrNotFound is the renderer's only failure mode.
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(doc.HTML))
}

// assetListResponse is the JSON response of the assets inspector.
type assetListResponse struct {
	Files []string `json:"files"`
}

// handleAssetList lists the asset folder, optionally filtered by a glob
// pattern. It exists to confirm the deployment actually shipped its
// diagrams.
func (p *Portfolio) handleAssetList(w http.ResponseWriter, r *http.Request) {
	pattern := r.URL.Query().Get("pattern")
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid pattern"})
		return
	}

	entries, err := os.ReadDir(p.assetsDir)
	if err != nil {
		writeJSON(w, http.StatusOK, assetListResponse{Files: []string{}})
		return
	}

	files := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if pattern != "" {
			if ok, _ := doublestar.Match(pattern, e.Name()); !ok {
				continue
			}
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)

	writeJSON(w, http.StatusOK, assetListResponse{Files: files})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func bulletList(bullets []string) string {
	var b strings.Builder
	for _, line := range bullets {
		b.WriteString("- ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func orDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
