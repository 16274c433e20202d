// Package views renders view-root state as HTML.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/wbvaa/portal/internal/app/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// PageTemplate is the name of the full-page template.
const PageTemplate = "layout.html"

var funcs = template.FuncMap{
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
	"inc":   func(i int) int { return i + 1 },
	// Phone numbers come from the catalog, not from requests.
	"tel": func(phone string) template.URL {
		return template.URL("tel:" + strings.ReplaceAll(phone, " ", ""))
	},
	"categoryClass": func(c models.Category) string {
		switch c {
		case models.CategoryPromotion:
			return "badge-promotion"
		case models.CategoryTransfer:
			return "badge-transfer"
		default:
			return "badge-order"
		}
	},
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// Static serves the embedded stylesheet and script.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
