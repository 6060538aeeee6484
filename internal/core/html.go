package core

import (
	"fmt"
	"html"
	"html/template"
	"strings"
)

func RenderModuleScripts(srcs []string) template.HTML {
	var b strings.Builder
	for _, src := range srcs {
		fmt.Fprintf(&b, `<script type="module" src="%s"></script>`, html.EscapeString(src))
		b.WriteString("\n")
	}
	return template.HTML(b.String())
}

func RenderStylesheetLinks(hrefs []string) template.HTML {
	var b strings.Builder
	for _, href := range hrefs {
		fmt.Fprintf(&b, `<link rel="stylesheet" href="%s" />`, html.EscapeString(href))
		b.WriteString("\n")
	}
	return template.HTML(b.String())
}
