package viteprovider

import (
	"net/http"
	"time"

	"github.com/3-lines-studio/viteprovider/internal/core"
	"github.com/3-lines-studio/viteprovider/internal/usecase"
)

type (
	Config      = core.Config
	FileSystem  = usecase.FileSystem
	Cache       = usecase.Cache
	Environment = usecase.Environment
	Logger      = usecase.Logger
)

type Option func(*Provider)

// WithConfig replaces the whole configuration. Options applied after it
// still override single fields.
func WithConfig(cfg Config) Option {
	return func(p *Provider) {
		p.cfg = cfg
	}
}

func WithDefaultScript(path string) Option {
	return func(p *Provider) {
		p.cfg.DefaultScript = path
	}
}

// WithDefaultStyle sets the stylesheet entry included on every page. An
// empty path disables it.
func WithDefaultStyle(path string) Option {
	return func(p *Provider) {
		p.cfg.DefaultStyle = path
	}
}

func WithDistPath(path string) Option {
	return func(p *Provider) {
		p.cfg.DistPath = path
	}
}

func WithManifestPath(path string) Option {
	return func(p *Provider) {
		p.cfg.ManifestPath = path
	}
}

func WithPackageManager(name string) Option {
	return func(p *Provider) {
		p.cfg.PackageManager = name
	}
}

func WithFileSystem(fs FileSystem) Option {
	return func(p *Provider) {
		p.fs = fs
	}
}

func WithCache(cache Cache) Option {
	return func(p *Provider) {
		p.cache = cache
	}
}

func WithEnvironment(env Environment) Option {
	return func(p *Provider) {
		p.env = env
	}
}

func WithLogger(logger Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

// WithAdditional registers a per-request source of extra logical assets,
// appended after the ones passed to Includes.
func WithAdditional(fn func(*http.Request) []string) Option {
	return func(p *Provider) {
		p.additional = fn
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		p.now = now
	}
}
