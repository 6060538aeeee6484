package core

import "testing"

func TestJoinLinks(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{parts: []string{"/_resources/", "app/client/dist/", "assets/index-x1.js"}, want: "/_resources/app/client/dist/assets/index-x1.js"},
		{parts: []string{"/_resources", "/app/client/dist", "/a.js"}, want: "/_resources/app/client/dist/a.js"},
		{parts: []string{"http://localhost:5173", "/@vite/client"}, want: "http://localhost:5173/@vite/client"},
		{parts: []string{"", "dist/", "", "a.css"}, want: "dist/a.css"},
		{parts: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := JoinLinks(tt.parts...); got != tt.want {
				t.Errorf("JoinLinks(%q) = %q, want %q", tt.parts, got, tt.want)
			}
		})
	}
}

func TestConfigAssetURL(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.AssetURL("assets/index-x1.js"); got != "/_resources/app/client/dist/assets/index-x1.js" {
		t.Errorf("AssetURL() = %q", got)
	}
}
