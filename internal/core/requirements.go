package core

import (
	"html/template"
	"sync"
)

// Requirements collects the stylesheets a page needs while it renders. Hrefs
// are kept in first-seen order and registered once.
type Requirements struct {
	mu   sync.Mutex
	seen map[string]struct{}
	css  []string
}

func NewRequirements() *Requirements {
	return &Requirements{seen: make(map[string]struct{})}
}

func (r *Requirements) CSS(hrefs ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seen == nil {
		r.seen = make(map[string]struct{})
	}
	for _, href := range hrefs {
		if _, ok := r.seen[href]; ok {
			continue
		}
		r.seen[href] = struct{}{}
		r.css = append(r.css, href)
	}
}

func (r *Requirements) Stylesheets() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.css))
	copy(out, r.css)
	return out
}

func (r *Requirements) RenderLinks() template.HTML {
	return RenderStylesheetLinks(r.Stylesheets())
}
