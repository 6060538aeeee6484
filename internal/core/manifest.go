package core

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"go.trai.ch/zerr"
)

// ManifestEntry is one record of a Vite build manifest. Only File and CSS
// take part in resolution; the remaining fields are kept for inspection.
type ManifestEntry struct {
	File           string   `json:"file"`
	Name           string   `json:"name,omitempty"`
	Src            string   `json:"src,omitempty"`
	IsEntry        bool     `json:"isEntry,omitempty"`
	CSS            []string `json:"css,omitempty"`
	Imports        []string `json:"imports,omitempty"`
	DynamicImports []string `json:"dynamicImports,omitempty"`
	Assets         []string `json:"assets,omitempty"`
}

// Manifest maps logical source paths (e.g. "src/index.ts") to their built outputs.
type Manifest map[string]ManifestEntry

var (
	errNotJSON       = zerr.New("content is not valid JSON")
	errNotUTF8       = zerr.New("content is not valid UTF-8")
	errEmptyManifest = zerr.New("content is empty or not a JSON object")
)

// ParseManifest decodes a manifest document. Anything other than a
// non-empty JSON object in valid UTF-8 is rejected, so keys are never
// rewritten with replacement characters.
func ParseManifest(data []byte) (Manifest, error) {
	if !utf8.Valid(data) {
		return nil, errNotUTF8
	}
	if !gjson.ValidBytes(data) {
		return nil, errNotJSON
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() || len(root.Map()) == 0 {
		return nil, errEmptyManifest
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (m Manifest) Lookup(name string) (ManifestEntry, bool) {
	if m == nil {
		return ManifestEntry{}, false
	}
	entry, ok := m[name]
	return entry, ok
}

// EntryPoints returns the keys flagged with isEntry, in no particular order.
func (m Manifest) EntryPoints() []string {
	var names []string
	for name, entry := range m {
		if entry.IsEntry {
			names = append(names, name)
		}
	}
	return names
}
