package config

import (
	"github.com/spf13/pflag"

	"github.com/3-lines-studio/viteprovider/internal/core"
)

// Overrides are command line values layered over the file configuration.
type Overrides struct {
	ManifestPath   string
	DistPath       string
	PackageManager string
	DefaultScript  string
	DefaultStyle   string
}

func (o *Overrides) Register(flags *pflag.FlagSet) {
	flags.StringVar(&o.ManifestPath, "manifest", "", "Path to the Vite manifest.json")
	flags.StringVar(&o.DistPath, "dist", "", "Build output directory used in asset URLs")
	flags.StringVar(&o.PackageManager, "package-manager", "", "Package manager named in rebuild hints")
	flags.StringVar(&o.DefaultScript, "entry", "", "Logical path of the default script entry")
	flags.StringVar(&o.DefaultStyle, "style", "", "Logical path of the default stylesheet entry")
}

func (o Overrides) Apply(cfg core.Config) core.Config {
	setString(&cfg.ManifestPath, o.ManifestPath)
	setString(&cfg.DistPath, o.DistPath)
	setString(&cfg.PackageManager, o.PackageManager)
	setString(&cfg.DefaultScript, o.DefaultScript)
	setString(&cfg.DefaultStyle, o.DefaultStyle)
	return cfg
}
