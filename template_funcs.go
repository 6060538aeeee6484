package viteprovider

import (
	"html/template"
	"net/http"
)

// TemplateFuncs binds the provider to r for use in html/template.
//
//	{{viteStyles}} in the head, {{viteIncludes "app/client/src/admin.ts"}} before </body>.
//
// viteStyles only sees stylesheets registered by earlier viteIncludes calls,
// so templates that render the head first should call viteIncludes there.
func (p *Provider) TemplateFuncs(r *http.Request) template.FuncMap {
	return template.FuncMap{
		"viteIncludes": func(additional ...string) (template.HTML, error) {
			return p.Includes(r, additional...)
		},
		"viteStyles": func() template.HTML {
			return p.Styles(r)
		},
		"viteIsHot": p.IsHot,
		"viteBaseHref": func() string {
			if !p.IsHot() {
				return ""
			}
			return p.DevServerBaseURL(r)
		},
		"viteEntryPoint": p.EntryPoint,
	}
}
