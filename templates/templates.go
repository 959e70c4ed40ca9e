package templates

import (
	"embed"
	"html/template"
	"strconv"

	"gin-boutique/validators"
)

//go:embed views
var views embed.FS

// Load parses every view. Each file registers its page with {{define "dir/name"}}.
func Load() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"hasError": hasError,
		"price":    formatPrice,
	}).ParseFS(views, "views/*.html", "views/admin/*.html", "views/shop/*.html"))
}

func hasError(errs []validators.FieldError, param string) bool {
	for _, e := range errs {
		if e.Param == param {
			return true
		}
	}
	return false
}

func formatPrice(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
