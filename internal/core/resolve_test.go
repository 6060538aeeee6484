package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEntries(t *testing.T) {
	base := Manifest{
		"a.css": {File: "a-x1.css"},
		"a.ts":  {File: "a-x1.js"},
	}

	tests := []struct {
		name        string
		manifest    Manifest
		input       ResolveInput
		wantScripts []string
		wantStyles  []string
		wantSkipped []string
	}{
		{
			name:        "default script and style",
			manifest:    base,
			input:       ResolveInput{DefaultScript: "a.ts", DefaultStyle: "a.css"},
			wantScripts: []string{"a-x1.js"},
			wantStyles:  []string{"a-x1.css"},
		},
		{
			name:        "no default style",
			manifest:    base,
			input:       ResolveInput{DefaultScript: "a.ts"},
			wantScripts: []string{"a-x1.js"},
		},
		{
			name:        "default style absent from manifest",
			manifest:    base,
			input:       ResolveInput{DefaultScript: "a.ts", DefaultStyle: "other.css"},
			wantScripts: []string{"a-x1.js"},
		},
		{
			name:        "missing additional asset is dropped",
			manifest:    base,
			input:       ResolveInput{DefaultScript: "a.ts", DefaultStyle: "a.css", Additional: []string{"missing.jsx"}},
			wantScripts: []string{"a-x1.js"},
			wantStyles:  []string{"a-x1.css"},
			wantSkipped: []string{"missing.jsx"},
		},
		{
			name: "additional script carries its css",
			manifest: Manifest{
				"a.ts":  {File: "a-x1.js"},
				"b.jsx": {File: "b-x2.js", CSS: []string{"b-x2.css"}},
			},
			input:       ResolveInput{DefaultScript: "a.ts", Additional: []string{"b.jsx"}},
			wantScripts: []string{"a-x1.js", "b-x2.js"},
			wantStyles:  []string{"b-x2.css"},
		},
		{
			name: "default script carries its css",
			manifest: Manifest{
				"a.ts":  {File: "a-x1.js", CSS: []string{"a-chunk.css"}},
				"a.css": {File: "a-x1.css"},
			},
			input:       ResolveInput{DefaultScript: "a.ts", DefaultStyle: "a.css"},
			wantScripts: []string{"a-x1.js"},
			wantStyles:  []string{"a-x1.css", "a-chunk.css"},
		},
		{
			name: "additional stylesheets by extension",
			manifest: Manifest{
				"a.ts":       {File: "a-x1.js"},
				"extra.css":  {File: "extra-1.css"},
				"theme.scss": {File: "theme-2.css"},
			},
			input:       ResolveInput{DefaultScript: "a.ts", Additional: []string{"extra.css", "theme.scss"}},
			wantScripts: []string{"a-x1.js"},
			wantStyles:  []string{"extra-1.css", "theme-2.css"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveEntries(tt.manifest, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScripts, got.Scripts)
			assert.Equal(t, tt.wantStyles, got.Styles)
			assert.Equal(t, tt.wantSkipped, got.Skipped)
		})
	}
}

func TestResolveEntriesMissingDefaultScript(t *testing.T) {
	m := Manifest{"a.css": {File: "a-x1.css"}}

	_, err := ResolveEntries(m, ResolveInput{
		DefaultScript: "a.ts",
		DefaultStyle:  "a.css",
		Hint:          BuildHint{ManifestPath: "app/client/dist/manifest.json", PackageManager: "npm run"},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingEntry))
	assert.Contains(t, err.Error(), "a.ts is missing from app/client/dist/manifest.json")
	assert.Contains(t, err.Error(), "`npm run build`")
}

func TestClassify(t *testing.T) {
	tests := map[string]AssetKind{
		"src/index.css":   AssetStylesheet,
		"src/theme.scss":  AssetStylesheet,
		"src/index.ts":    AssetScript,
		"src/page.jsx":    AssetScript,
		"src/styles.less": AssetScript,
		"src/index.CSS":   AssetScript,
		"css":             AssetScript,
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, Classify(name))
		})
	}
}
