// Package config resolves the optional surreal.yaml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up in the project root.
const FileName = "surreal.yaml"

const (
	defaultWidth  = 800
	defaultHeight = 600
)

// Config represents surreal.yaml.
type Config struct {
	App       AppConfig       `yaml:"app"`
	Window    WindowConfig    `yaml:"window"`
	Theme     string          `yaml:"theme,omitempty"`
	Resources ResourcesConfig `yaml:"resources"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name  string `yaml:"name,omitempty"`
	Title string `yaml:"title,omitempty"`
}

// WindowConfig is the initial window size.
type WindowConfig struct {
	Width  uint32 `yaml:"width,omitempty"`
	Height uint32 `yaml:"height,omitempty"`
}

// ResourcesConfig maps resource aliases to files relative to the project
// root.
type ResourcesConfig struct {
	Fonts  map[string]string `yaml:"fonts,omitempty"`
	Images map[string]string `yaml:"images,omitempty"`
}

// Resource is an alias bound to an absolute file path.
type Resource struct {
	Alias string
	Path  string
}

// Resolved contains configuration with defaults applied and paths made
// absolute.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Title      string
	Width      uint32
	Height     uint32
	// ThemePath is empty when the default theme is used.
	ThemePath string
	Fonts     []Resource
	Images    []Resource
}

// LoadOptional reads surreal.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads surreal.yaml (if present) and resolves defaults. A
// directory without go.mod resolves too; its name is used for the app.
func Resolve(dir string) (*Resolved, error) {
	modPath, err := modulePath(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modPath, dir)
	}
	title := strings.TrimSpace(cfg.App.Title)
	if title == "" {
		title = appName
	}

	r := &Resolved{
		Root:       dir,
		ModulePath: modPath,
		AppName:    appName,
		Title:      title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
	}
	if r.Width == 0 {
		r.Width = defaultWidth
	}
	if r.Height == 0 {
		r.Height = defaultHeight
	}
	if t := strings.TrimSpace(cfg.Theme); t != "" {
		r.ThemePath = absolute(dir, t)
	}
	if r.Fonts, err = resources(dir, "fonts", cfg.Resources.Fonts); err != nil {
		return nil, err
	}
	if r.Images, err = resources(dir, "images", cfg.Resources.Images); err != nil {
		return nil, err
	}
	return r, nil
}

// FindProjectRoot walks up from start to the nearest directory holding
// go.mod or surreal.yaml.
func FindProjectRoot(start string) (string, error) {
	dir := start
	for {
		for _, name := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s or go.mod found above %s", FileName, start)
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	if err := module.CheckImportPath(path); err != nil {
		return "", fmt.Errorf("invalid module path in go.mod: %w", err)
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "surreal_app"
	}
	return base
}

func absolute(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// resources returns the entries sorted by alias.
func resources(dir, kind string, m map[string]string) ([]Resource, error) {
	if len(m) == 0 {
		return nil, nil
	}
	out := make([]Resource, 0, len(m))
	for alias, path := range m {
		alias = strings.TrimSpace(alias)
		path = strings.TrimSpace(path)
		if alias == "" || path == "" {
			return nil, fmt.Errorf("resources.%s: alias and path must be non-empty", kind)
		}
		out = append(out, Resource{Alias: alias, Path: absolute(dir, path)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Alias < out[j].Alias })
	return out, nil
}
