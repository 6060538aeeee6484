// Package config loads provider settings from a YAML or JSONC file.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/3-lines-studio/viteprovider/internal/core"
)

// File is the on-disk shape of the configuration. Unset fields keep their
// defaults.
type File struct {
	DefaultScript  *string        `yaml:"defaultScript" json:"defaultScript"`
	DefaultStyle   *string        `yaml:"defaultStyle" json:"defaultStyle"`
	DistPath       string         `yaml:"distPath" json:"distPath"`
	ManifestPath   string         `yaml:"manifestPath" json:"manifestPath"`
	ResourcesPath  string         `yaml:"resourcesPath" json:"resourcesPath"`
	PackageManager string         `yaml:"packageManager" json:"packageManager"`
	SiteURL        string         `yaml:"siteURL" json:"siteURL"`
	DevServer      DevServerBlock `yaml:"devServer" json:"devServer"`
	Env            EnvBlock       `yaml:"env" json:"env"`
}

type DevServerBlock struct {
	Port       int `yaml:"port" json:"port"`
	SecurePort int `yaml:"securePort" json:"securePort"`
}

type EnvBlock struct {
	BuildVersion    string `yaml:"buildVersion" json:"buildVersion"`
	EnvironmentType string `yaml:"environmentType" json:"environmentType"`
	HotReload       string `yaml:"hotReload" json:"hotReload"`
}

// Load reads the configuration at path. The format follows the extension:
// .yaml/.yml for YAML, .json/.jsonc for JSON with comments.
func Load(path string) (core.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the operator
	if err != nil {
		return core.Config{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	f, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return core.Config{}, zerr.With(err, "path", path)
	}
	return f.Apply(core.DefaultConfig()), nil
}

// LoadOptional is Load, except that a missing file yields the defaults.
func LoadOptional(path string) (core.Config, error) {
	if path == "" {
		return core.DefaultConfig(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return core.DefaultConfig(), nil
	}
	return Load(path)
}

func Parse(data []byte, ext string) (File, error) {
	var f File

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return File{}, zerr.Wrap(err, "failed to parse config file")
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
			return File{}, zerr.Wrap(err, "failed to parse config file")
		}
	default:
		return File{}, zerr.With(zerr.New("unsupported config format"), "extension", ext)
	}

	return f, nil
}

// Apply overlays the set fields of f onto base.
func (f File) Apply(base core.Config) core.Config {
	cfg := base

	if f.DefaultScript != nil {
		cfg.DefaultScript = *f.DefaultScript
	}
	if f.DefaultStyle != nil {
		cfg.DefaultStyle = *f.DefaultStyle
	}
	setString(&cfg.DistPath, f.DistPath)
	setString(&cfg.ManifestPath, f.ManifestPath)
	setString(&cfg.ResourcesPath, f.ResourcesPath)
	setString(&cfg.PackageManager, f.PackageManager)
	setString(&cfg.SiteURL, f.SiteURL)
	setString(&cfg.Env.BuildVersion, f.Env.BuildVersion)
	setString(&cfg.Env.EnvironmentType, f.Env.EnvironmentType)
	setString(&cfg.Env.HotReload, f.Env.HotReload)

	if f.DevServer.Port != 0 {
		cfg.DevPorts.Plain = f.DevServer.Port
	}
	if f.DevServer.SecurePort != 0 {
		cfg.DevPorts.Secure = f.DevServer.SecurePort
	}

	return cfg
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
