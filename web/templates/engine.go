package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

//go:embed *.html
var files embed.FS

const (
	layoutFile   = "layout.html"
	partialsFile = "partials.html"
)

var _ fiber.Views = (*Engine)(nil)

// Engine renders the embedded pages. Each page is parsed together with the layout
// and the shared partials and must define a "content" block.
type Engine struct {
	mu    sync.RWMutex
	funcs template.FuncMap
	pages map[string]*template.Template
}

func New() *Engine {
	return &Engine{
		funcs: template.FuncMap{
			"add":        func(a, b int) int { return a + b },
			"sub":        func(a, b int) int { return a - b },
			"pathescape": url.PathEscape,
			"lower":      strings.ToLower,
			"timefmt": func(t time.Time) string {
				if t.IsZero() {
					return ""
				}
				return t.Local().Format("2006-01-02 15:04:05")
			},
		},
		pages: make(map[string]*template.Template),
	}
}

// Load parses every page. fiber calls it once before the first render.
func (e *Engine) Load() error {
	names, err := fs.Glob(files, "*.html")
	if err != nil {
		return err
	}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		if name == layoutFile || name == partialsFile {
			continue
		}
		t, err := template.New(name).Funcs(e.funcs).ParseFS(files, layoutFile, partialsFile, name)
		if err != nil {
			return fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[strings.TrimSuffix(name, ".html")] = t
	}

	e.mu.Lock()
	e.pages = pages
	e.mu.Unlock()
	return nil
}

// Render executes page name inside layout, or the bare "content" block when no layout is given.
func (e *Engine) Render(w io.Writer, name string, binding interface{}, layout ...string) error {
	e.mu.RLock()
	t, ok := e.pages[name]
	e.mu.RUnlock()
	if !ok {
		return fmt.Errorf("template %s does not exist", name)
	}

	entry := "content"
	if len(layout) > 0 && layout[0] != "" {
		entry = layout[0]
	}
	return t.ExecuteTemplate(w, entry, binding)
}
