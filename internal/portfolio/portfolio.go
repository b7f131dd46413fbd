// Package portfolio composes and serves the gated portfolio page: the
// case studies, their diagram frames with image fallbacks, the static
// assets and the assets inspector.
package portfolio

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sgarch/archfolio/internal/drawio"
	"github.com/sgarch/archfolio/internal/gate"
)

// Portfolio renders the page from content, the diagram renderer and the
// assets directory.
type Portfolio struct {
	content   *Content
	renderer  *drawio.Renderer
	assetsDir string
	gate      *gate.Gate
}

// New creates a Portfolio.
func New(content *Content, renderer *drawio.Renderer, assetsDir string, g *gate.Gate) *Portfolio {
	return &Portfolio{
		content:   content,
		renderer:  renderer,
		assetsDir: assetsDir,
		gate:      g,
	}
}

// RegisterRoutes mounts the portfolio onto the given router. Everything
// except the unlock endpoint sits behind the access gate; the gate
// itself serves the lock page to unverified viewers.
func (p *Portfolio) RegisterRoutes(r chi.Router) {
	r.Post("/unlock", p.gate.HandleUnlock)

	r.Group(func(r chi.Router) {
		r.Use(p.gate.RequireAuth)
		r.Get("/", p.handleIndex)
		r.Get("/diagram/{name}", p.handleDiagram)
		r.Get("/api/assets", p.handleAssetList)
		r.Handle("/assets/*", http.StripPrefix("/assets/",
			http.FileServer(http.Dir(p.assetsDir))))
	})
}
