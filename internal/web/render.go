package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/redmonkez12/community-feed/templates"
)

// Renderer holds the parsed page templates. Each page is parsed together
// with base.html once at startup.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	names, err := fs.Glob(templates.PagesFS, "pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to list page templates: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, name := range names {
		base := path.Base(name)
		if base == "base.html" {
			continue
		}

		t, err := template.ParseFS(templates.PagesFS, "pages/base.html", name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}

		pages[strings.TrimSuffix(base, ".html")] = t
	}

	return &Renderer{pages: pages}, nil
}

// Render writes a page to the response. The page executes into a buffer
// first so a template error never produces a half-written response.
func (rn *Renderer) Render(w http.ResponseWriter, page string, data any) error {
	t, ok := rn.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return fmt.Errorf("failed to render page %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}
