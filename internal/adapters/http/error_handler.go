package http

import (
	"bytes"
	"html"
	"net/http"

	"github.com/3-lines-studio/viteprovider/internal/core"
)

// ServeError renders a 500 page for a failed include. The error text is
// only shown when isDev is set.
func ServeError(w http.ResponseWriter, err error, isDev bool) {
	data := core.ErrorData{
		Message: err.Error(),
		IsDev:   isDev,
	}

	var buf bytes.Buffer
	if err := core.ErrorTemplate.Execute(&buf, data); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}
