// Package views holds the HTML templates for the practice page.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"math"
	"strconv"
)

//go:embed templates/*.html
var templateFS embed.FS

// Funcs are the helpers available inside the templates.
var Funcs = template.FuncMap{
	"cell": Cell,
	"inc":  func(i int) int { return i + 1 },
}

// Templates parses the embedded templates. It panics on a malformed
// template since they are compiled into the binary.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(Funcs).ParseFS(templateFS, "templates/*.html"))
}

// Cell formats one result value for display. NULL is shown as "NULL" and
// whole REAL values keep one decimal place.
func Cell(v interface{}) string {
	if v == nil {
		return "NULL"
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1e15 {
			return strconv.FormatFloat(val, 'f', 1, 64)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
