package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/sbilibin2017/calorie-tracker/internal/logger"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.AppName}}</title>
</head>
<body>
<h1>{{.AppName}}</h1>
<p>Describe what you ate with <code>POST /api/analyze</code> and browse your searches with <code>GET /api/history</code>.</p>
<p>API documentation: <a href="/swagger/index.html">/swagger/index.html</a></p>
</body>
</html>
`))

// NewIndexHandler returns the landing page handler. The page is rendered once.
// @Summary Landing page
// @Tags system
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func NewIndexHandler(appName string) http.HandlerFunc {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, struct{ AppName string }{appName}); err != nil {
		logger.Log.Errorw("failed to render index page", "error", err)
	}
	page := buf.Bytes()

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(page)
	}
}
