package usecase

import (
	"context"

	"github.com/3-lines-studio/viteprovider/internal/core"
)

type BuiltInput struct {
	DefaultScript string
	DefaultStyle  string
	Additional    []string
	VersionKey    string
	ForceRefresh  bool
	// Requirements receives stylesheet hrefs when non-nil.
	Requirements *core.Requirements
}

type HotInput struct {
	BaseURL      string
	EntryPoint   string
	Additional   []string
	Requirements *core.Requirements
}

// IncludeOutput lists URLs ready for markup: module scripts in load order
// and the stylesheets that were registered alongside them.
type IncludeOutput struct {
	Modules []string
	Styles  []string
}

type IncludeService struct {
	manifests *ManifestService
	logger    Logger
	config    core.Config
}

func NewIncludeService(manifests *ManifestService, logger Logger, config core.Config) *IncludeService {
	if logger == nil {
		logger = nopLogger{}
	}
	return &IncludeService{
		manifests: manifests,
		logger:    logger,
		config:    config,
	}
}

// Resolve returns the physical manifest files for the configured default
// entries plus additional.
func (s *IncludeService) Resolve(ctx context.Context, in BuiltInput) (core.ResolvedAssets, error) {
	manifest, err := s.manifests.Cached(ctx, in.VersionKey, in.ForceRefresh)
	if err != nil {
		return core.ResolvedAssets{}, err
	}

	resolved, err := core.ResolveEntries(manifest, core.ResolveInput{
		DefaultScript: in.DefaultScript,
		DefaultStyle:  in.DefaultStyle,
		Additional:    in.Additional,
		Hint:          s.config.Hint(),
	})
	if err != nil {
		return core.ResolvedAssets{}, err
	}

	for _, asset := range resolved.Skipped {
		s.logger.Debug(ctx, "additional asset not in manifest", "asset", asset)
	}
	return resolved, nil
}

func (s *IncludeService) Built(ctx context.Context, in BuiltInput) (IncludeOutput, error) {
	resolved, err := s.Resolve(ctx, in)
	if err != nil {
		return IncludeOutput{}, err
	}

	var out IncludeOutput
	for _, file := range resolved.Scripts {
		out.Modules = append(out.Modules, s.config.AssetURL(file))
	}
	for _, file := range resolved.Styles {
		out.Styles = append(out.Styles, s.config.AssetURL(file))
	}

	if in.Requirements != nil {
		in.Requirements.CSS(out.Styles...)
	}
	return out, nil
}

// Hot builds the dev server includes. The manifest is not consulted.
func (s *IncludeService) Hot(in HotInput) IncludeOutput {
	out := IncludeOutput{
		Modules: []string{core.JoinLinks(in.BaseURL, core.ViteClientPath)},
	}
	if in.EntryPoint != "" {
		out.Modules = append(out.Modules, core.JoinLinks(in.BaseURL, in.EntryPoint))
	}

	scripts, styles := core.HotAssets(in.Additional)
	for _, script := range scripts {
		out.Modules = append(out.Modules, core.JoinLinks(in.BaseURL, script))
	}
	for _, style := range styles {
		out.Styles = append(out.Styles, core.JoinLinks(in.BaseURL, style))
	}

	if in.Requirements != nil {
		in.Requirements.CSS(out.Styles...)
	}
	return out
}
