// Package web embeds the page template and client assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

// Templates parses every embedded page template.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templates, "templates/*.html"))
}

// Static serves the files under static/ from the root of the returned FS.
func Static() http.FileSystem {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
