package core

import "strings"

type AssetKind int

const (
	AssetScript AssetKind = iota
	AssetStylesheet
)

func (k AssetKind) String() string {
	if k == AssetStylesheet {
		return "stylesheet"
	}
	return "script"
}

// Classify infers the asset kind from the logical name. Only .css and .scss
// count as stylesheets; everything else is treated as a script module.
func Classify(name string) AssetKind {
	if strings.HasSuffix(name, ".css") || strings.HasSuffix(name, ".scss") {
		return AssetStylesheet
	}
	return AssetScript
}
