package main

import (
	"html/template"
	"log"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/3-lines-studio/viteprovider"
)

const page = `<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    {{viteStyles}}
</head>
<body>
    <div id="app"></div>
    {{viteIncludes}}
</body>
</html>`

func main() {
	p, err := viteprovider.New(
		viteprovider.WithPackageManager("npm"),
		viteprovider.WithAdditional(func(req *http.Request) []string {
			if strings.HasPrefix(req.URL.Path, "/admin") {
				return []string{"app/client/src/admin.ts", "app/client/src/admin.css"}
			}
			return nil
		}),
	)
	if err != nil {
		log.Fatalf("Failed to create provider: %v", err)
	}

	router := chi.NewRouter()
	router.Use(p.Middleware)

	render := func(title string) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			// Includes registers the stylesheets read by viteStyles in the head.
			scripts, err := p.Includes(req)
			if err != nil {
				slog.Error("include failed", "err", err)
				p.ServeError(w, err)
				return
			}

			funcs := p.TemplateFuncs(req)
			funcs["viteIncludes"] = func() template.HTML { return scripts }

			tmpl, err := template.New("page").Funcs(funcs).Parse(page)
			if err != nil {
				p.ServeError(w, err)
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			if err := tmpl.Execute(w, map[string]string{"Title": title}); err != nil {
				slog.Error("render failed", "err", err)
			}
		}
	}

	router.Get("/", render("Home"))
	router.Get("/admin", render("Admin"))

	cfg := p.Config()
	dist := http.Dir(cfg.DistPath)
	router.Handle(cfg.ResourcesPath+cfg.DistPath+"*", http.StripPrefix(cfg.ResourcesPath+cfg.DistPath, http.FileServer(dist)))

	addr := ":8080"
	log.Printf("Serving on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}
