package core

// EnvNames are the process environment variables consulted at call time.
type EnvNames struct {
	BuildVersion    string
	EnvironmentType string
	HotReload       string
}

type Config struct {
	DefaultScript  string
	DefaultStyle   string
	DistPath       string
	ManifestPath   string
	ResourcesPath  string
	PackageManager string
	// SiteURL overrides the request-derived site URL used for the dev server.
	SiteURL  string
	DevPorts DevServerPorts
	Env      EnvNames
}

func DefaultConfig() Config {
	return Config{
		DefaultScript:  "app/client/src/index.ts",
		DefaultStyle:   "app/client/src/index.css",
		DistPath:       "app/client/dist/",
		ManifestPath:   "app/client/dist/manifest.json",
		ResourcesPath:  "/_resources/",
		PackageManager: DefaultPackageManager,
		DevPorts:       DefaultDevServerPorts,
		Env: EnvNames{
			BuildVersion:    "BUILD_VERSION",
			EnvironmentType: "APP_ENV",
			HotReload:       "VITE_DEV_SERVER",
		},
	}
}

func (c Config) Hint() BuildHint {
	return BuildHint{ManifestPath: c.ManifestPath, PackageManager: c.PackageManager}
}

// AssetURL is the public URL of a built file inside the dist directory.
func (c Config) AssetURL(file string) string {
	return JoinLinks(c.ResourcesPath, c.DistPath, file)
}
