package core

import (
	"html/template"
)

type ErrorData struct {
	Message string
	IsDev   bool
}

// ErrorTemplate is the page served when page assets cannot be resolved.
var ErrorTemplate = template.Must(template.New("asset-error").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Assets unavailable</title>
<style>
body { font: 15px/1.5 system-ui, sans-serif; max-width: 720px; margin: 64px auto; padding: 0 24px; color: #222; }
h1 { font-size: 22px; color: #b3261e; }
pre { white-space: pre-wrap; background: #f4f4f5; padding: 12px 16px; border-left: 3px solid #b3261e; }
</style>
</head>
<body>
<h1>Page assets unavailable</h1>
{{if .IsDev}}<p>The Vite manifest could not be used to build this page:</p>
<pre>{{.Message}}</pre>
<p>Rebuild the client bundle, or start the Vite dev server, then reload with <code>?flush</code>.</p>
{{else}}<p>This page is temporarily unavailable while its assets are rebuilt. Please try again shortly.</p>
{{end}}</body>
</html>`))
