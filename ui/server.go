// Package ui serves the web playground: a single page that evaluates an
// arithmetic expression and shows the raw parse results behind it.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"

	"github.com/dhamidi/kombu/arith"
	"github.com/dhamidi/kombu/format"
)

//go:embed static templates
var embeddedFS embed.FS

type Server struct {
	staticFS   fs.FS
	templateFS fs.FS
	mux        *http.ServeMux
	funcMap    template.FuncMap
}

func NewServer() (*Server, error) {
	staticFS := overlayFS("ui/static", mustSub(embeddedFS, "static"))
	templateFS := overlayFS("ui/templates", mustSub(embeddedFS, "templates"))

	funcMap := template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
	}

	// Parse eagerly so a broken template fails at startup, not on the first
	// request. Rendering re-parses, so template edits in the working tree
	// show up without a rebuild (the overlay prefers the working tree).
	if _, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "*.html"); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		staticFS:   staticFS,
		templateFS: templateFS,
		mux:        http.NewServeMux(),
		funcMap:    funcMap,
	}

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	s.mux.HandleFunc("POST /eval", s.handleEval)
	s.mux.HandleFunc("GET /", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, err := template.New("").Funcs(s.funcMap).ParseFS(s.templateFS, "*.html")
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	tmpl.ExecuteTemplate(w, name, data)
}

// PlaygroundData is everything the playground page renders: the submitted
// expression, its value or the evaluation error, and the raw result
// sequence of the underlying parser.
type PlaygroundData struct {
	Expr    string
	Value   int
	Err     string
	Results []format.Result
	HasRun  bool
}

func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data: "+err.Error(), http.StatusBadRequest)
		return
	}

	expr := r.FormValue("expr")
	if expr == "" {
		http.Error(w, "must provide expr", http.StatusBadRequest)
		return
	}

	raw, parseErr := arith.Parse(expr)
	results := format.Results(raw)

	accept := r.Header.Get("Accept")
	if accept == "application/json" {
		if parseErr != nil {
			http.Error(w, parseErr.Error(), http.StatusUnprocessableEntity)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := format.NewJSONEncoder(w).Encode(results); err != nil {
			http.Error(w, "encode: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}

	data := PlaygroundData{Expr: expr, Results: results, HasRun: true}
	if parseErr != nil {
		data.Err = parseErr.Error()
	} else if value, err := arith.Eval(expr); err != nil {
		data.Err = err.Error()
	} else {
		data.Value = value
	}
	s.render(w, "index.html", data)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.render(w, "index.html", PlaygroundData{})
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// overlayFS serves files from the working tree when present and falls back
// to the embedded copy, so development does not require rebuilding for
// every asset change.
type overlayFSType struct {
	primary   fs.FS
	secondary fs.FS
}

func overlayFS(primaryPath string, secondary fs.FS) fs.FS {
	return &overlayFSType{
		primary:   os.DirFS(primaryPath),
		secondary: secondary,
	}
}

func (o *overlayFSType) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	return o.secondary.Open(name)
}

func (o *overlayFSType) ReadDir(name string) ([]fs.DirEntry, error) {
	entries := make(map[string]fs.DirEntry)

	if rd, ok := o.secondary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	if rd, ok := o.primary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	result := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	return result, nil
}
