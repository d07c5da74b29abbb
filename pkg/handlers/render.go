package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/eknkc/pug"
	"github.com/eknkc/pug/compiler"
)

// Renderer compiles pug views from a directory and caches them
type Renderer struct {
	dir       string
	reload    bool
	mu        sync.RWMutex
	templates map[string]*template.Template
}

// NewRenderer creates a renderer for dir. With reload set every render recompiles the view.
func NewRenderer(dir string, reload bool) *Renderer {
	// pug joins view paths onto its Dir and rejects anything starting with ".."
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &Renderer{
		dir:       dir,
		reload:    reload,
		templates: make(map[string]*template.Template),
	}
}

// Template returns the compiled view called name
func (r *Renderer) Template(name string) (*template.Template, error) {
	if !r.reload {
		r.mu.RLock()
		tpl, ok := r.templates[name]
		r.mu.RUnlock()
		if ok {
			return tpl, nil
		}
	}

	tpl, err := pug.CompileFile(name+".pug", pug.Options{Dir: compiler.FsDir(r.dir)})
	if err != nil {
		return nil, fmt.Errorf("compile view %s: %w", name, err)
	}

	if !r.reload {
		r.mu.Lock()
		r.templates[name] = tpl
		r.mu.Unlock()
	}
	return tpl, nil
}

// Render executes the view into a buffer and writes it with the given status
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	tpl, err := r.Template(name)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute view %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}
