// Package viteprovider resolves Vite build assets for server-rendered pages.
//
// In built mode the Vite manifest maps logical source paths to hashed output
// files. In hot mode the markup points at the Vite dev server instead.
package viteprovider

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"go.trai.ch/zerr"

	"github.com/3-lines-studio/viteprovider/internal/adapters/cache"
	"github.com/3-lines-studio/viteprovider/internal/adapters/env"
	"github.com/3-lines-studio/viteprovider/internal/adapters/fs"
	httpadapter "github.com/3-lines-studio/viteprovider/internal/adapters/http"
	"github.com/3-lines-studio/viteprovider/internal/adapters/logger"
	"github.com/3-lines-studio/viteprovider/internal/core"
	"github.com/3-lines-studio/viteprovider/internal/usecase"
)

type (
	Manifest       = core.Manifest
	ManifestEntry  = core.ManifestEntry
	ResolvedAssets = core.ResolvedAssets
	Requirements   = core.Requirements
)

var (
	ErrManifestNotFound = core.ErrManifestNotFound
	ErrManifestRead     = core.ErrManifestRead
	ErrManifestParse    = core.ErrManifestParse
	ErrMissingEntry     = core.ErrMissingEntry

	ErrInvalidConfig = zerr.New("invalid provider configuration")
)

type Provider struct {
	cfg        Config
	fs         FileSystem
	cache      Cache
	env        Environment
	logger     Logger
	additional func(*http.Request) []string
	now        func() time.Time

	manifests *usecase.ManifestService
	includes  *usecase.IncludeService
}

func DefaultConfig() Config {
	return core.DefaultConfig()
}

func New(opts ...Option) (*Provider, error) {
	p := &Provider{
		cfg: core.DefaultConfig(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.cfg.DefaultScript == "" {
		return nil, zerr.With(zerr.Wrap(ErrInvalidConfig, "default script is required"), "field", "defaultScript")
	}
	if p.cfg.ManifestPath == "" {
		return nil, zerr.With(zerr.Wrap(ErrInvalidConfig, "manifest path is required"), "field", "manifestPath")
	}
	if p.cfg.PackageManager == "" {
		p.cfg.PackageManager = core.DefaultPackageManager
	}

	if p.fs == nil {
		p.fs = fs.NewOSFileSystem("")
	}
	if p.cache == nil {
		p.cache = cache.NewStore[core.Manifest](0)
	}
	if p.env == nil {
		p.env = env.OS{}
	}
	if p.logger == nil {
		p.logger = logger.Discard()
	}
	if p.now == nil {
		p.now = time.Now
	}

	p.manifests = usecase.NewManifestService(p.fs, p.cache, p.logger, p.cfg.Hint())
	p.includes = usecase.NewIncludeService(p.manifests, p.logger, p.cfg)
	return p, nil
}

func (p *Provider) Config() Config {
	return p.cfg
}

func (p *Provider) snapshot() env.Snapshot {
	return env.Read(p.env, p.cfg.Env)
}

// IsHot reports whether assets are served by the Vite dev server. The
// environment is read on every call.
func (p *Provider) IsHot() bool {
	return p.snapshot().IsHot()
}

func (p *Provider) EntryPoint() string {
	return p.cfg.DefaultScript
}

// DevServerBaseURL is the origin of the Vite dev server for r. A configured
// SiteURL takes precedence over the request host.
func (p *Provider) DevServerBaseURL(r *http.Request) string {
	siteURL := p.cfg.SiteURL
	if siteURL == "" {
		siteURL = httpadapter.SiteURL(r)
	}
	return core.DevServerBaseURL(siteURL, httpadapter.IsSecure(r), p.cfg.DevPorts)
}

// AssetURL is the public URL of a built file.
func (p *Provider) AssetURL(file string) string {
	return p.cfg.AssetURL(file)
}

func (p *Provider) versionKey() string {
	return core.ManifestCacheKey(p.snapshot().BuildVersion, p.now())
}

// Manifest returns the cached manifest for the current build version.
func (p *Provider) Manifest(ctx context.Context, refresh bool) (Manifest, error) {
	return p.manifests.Cached(ctx, p.versionKey(), refresh)
}

// Resolve maps the default entries plus additional to built files without
// producing markup.
func (p *Provider) Resolve(ctx context.Context, additional ...string) (ResolvedAssets, error) {
	return p.includes.Resolve(ctx, usecase.BuiltInput{
		DefaultScript: p.cfg.DefaultScript,
		DefaultStyle:  p.cfg.DefaultStyle,
		Additional:    additional,
		VersionKey:    p.versionKey(),
	})
}

func requestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}

func (p *Provider) requested(r *http.Request, additional []string) []string {
	if p.additional == nil || r == nil {
		return additional
	}
	extra := p.additional(r)
	if len(extra) == 0 {
		return additional
	}
	out := make([]string, 0, len(additional)+len(extra))
	out = append(out, additional...)
	return append(out, extra...)
}

// Includes returns the module script tags for r. Stylesheets go to the
// request's Requirements when Middleware is installed, otherwise they are
// emitted as link tags ahead of the scripts.
func (p *Provider) Includes(r *http.Request, additional ...string) (template.HTML, error) {
	ctx := requestContext(r)
	additional = p.requested(r, additional)
	reqs := httpadapter.RequirementsFrom(ctx)
	snap := p.snapshot()

	var out usecase.IncludeOutput
	if snap.IsHot() {
		out = p.includes.Hot(usecase.HotInput{
			BaseURL:      p.DevServerBaseURL(r),
			EntryPoint:   p.cfg.DefaultScript,
			Additional:   additional,
			Requirements: reqs,
		})
	} else {
		var err error
		out, err = p.includes.Built(ctx, usecase.BuiltInput{
			DefaultScript: p.cfg.DefaultScript,
			DefaultStyle:  p.cfg.DefaultStyle,
			Additional:    additional,
			VersionKey:    core.ManifestCacheKey(snap.BuildVersion, p.now()),
			ForceRefresh:  httpadapter.FlushRequested(r),
			Requirements:  reqs,
		})
		if err != nil {
			p.logger.Error(ctx, err)
			return "", err
		}
	}

	scripts := core.RenderModuleScripts(out.Modules)
	if reqs != nil {
		return scripts, nil
	}
	return core.RenderStylesheetLinks(out.Styles) + scripts, nil
}

// Styles renders the stylesheets registered for r so far.
func (p *Provider) Styles(r *http.Request) template.HTML {
	reqs := httpadapter.RequirementsFrom(requestContext(r))
	if reqs == nil {
		return ""
	}
	return reqs.RenderLinks()
}

// Middleware attaches a fresh Requirements registry to every request.
func (p *Provider) Middleware(next http.Handler) http.Handler {
	return httpadapter.RequirementsMiddleware(next)
}

func RequirementsFrom(ctx context.Context) *Requirements {
	return httpadapter.RequirementsFrom(ctx)
}

// ServeError writes a 500 page for err. The message is only shown in the
// dev environment.
func (p *Provider) ServeError(w http.ResponseWriter, err error) {
	httpadapter.ServeError(w, err, p.snapshot().IsDev())
}
