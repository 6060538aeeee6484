package env

import (
	"os"

	"github.com/3-lines-studio/viteprovider/internal/core"
)

// OS reads the process environment at call time.
type OS struct{}

func (OS) Getenv(key string) string {
	return os.Getenv(key)
}

// Map is a fixed environment, mostly for tests and embedding callers that
// resolve settings themselves.
type Map map[string]string

func (m Map) Getenv(key string) string {
	return m[key]
}

type reader interface {
	Getenv(key string) string
}

// Snapshot is the set of values the provider reads for one call.
type Snapshot struct {
	BuildVersion    string
	EnvironmentType string
	HotReload       string
}

func Read(r reader, names core.EnvNames) Snapshot {
	return Snapshot{
		BuildVersion:    r.Getenv(names.BuildVersion),
		EnvironmentType: r.Getenv(names.EnvironmentType),
		HotReload:       r.Getenv(names.HotReload),
	}
}

func (s Snapshot) IsHot() bool {
	return core.IsHotReloadEnabled(s.EnvironmentType, s.HotReload)
}

func (s Snapshot) IsDev() bool {
	return s.EnvironmentType == core.DevEnvironment
}
