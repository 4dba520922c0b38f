// Package web embeds the HTML templates served by the controllers.
package web

import (
	"embed"
	"html/template"

	"github.com/yeremiapane/food-order-app/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every page template with the shared helpers.
func Templates() *template.Template {
	return template.Must(
		template.New("").Funcs(template.FuncMap{
			"lineTotal": utils.DisplayLineTotal,
		}).ParseFS(templateFS, "templates/*.html"),
	)
}
