package core

type ResolveInput struct {
	DefaultScript string
	DefaultStyle  string
	Additional    []string
	Hint          BuildHint
}

// ResolvedAssets holds physical manifest filenames in emission order.
// Skipped lists additional assets that had no manifest entry.
type ResolvedAssets struct {
	Scripts []string
	Styles  []string
	Skipped []string
}

// ResolveEntries maps the requested logical assets to their built files.
// The default script must be present; missing additional assets are dropped.
func ResolveEntries(m Manifest, in ResolveInput) (ResolvedAssets, error) {
	var out ResolvedAssets

	script, ok := m.Lookup(in.DefaultScript)
	if !ok {
		return ResolvedAssets{}, in.Hint.MissingEntry(in.DefaultScript)
	}

	if in.DefaultStyle != "" {
		if style, ok := m.Lookup(in.DefaultStyle); ok {
			out.Styles = append(out.Styles, style.File)
		}
	}

	out.Scripts = append(out.Scripts, script.File)
	out.Styles = append(out.Styles, script.CSS...)

	for _, asset := range in.Additional {
		entry, ok := m.Lookup(asset)
		if !ok {
			out.Skipped = append(out.Skipped, asset)
			continue
		}

		switch Classify(asset) {
		case AssetStylesheet:
			out.Styles = append(out.Styles, entry.File)
		default:
			out.Scripts = append(out.Scripts, entry.File)
			out.Styles = append(out.Styles, entry.CSS...)
		}
	}

	return out, nil
}
