// Package config provides the configuration loader for deco.
package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"go.trai.ch/deco/internal/core/domain"
	"go.trai.ch/deco/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds deco.yaml in cwd or its nearest ancestor and merges it over the defaults.
// The tsconfig path is resolved against the directory holding the configuration
// file, or against cwd when there is none.
func (l *Loader) Load(cwd string) (domain.Options, error) {
	opts := domain.DefaultOptions()

	configPath, found := findConfiguration(cwd)
	if !found {
		opts.Tsconfig = filepath.Join(cwd, opts.Tsconfig)
		return opts, nil
	}

	var decofile Decofile
	if err := readAndUnmarshalYAML(configPath, &decofile); err != nil {
		return domain.Options{}, err
	}

	if err := l.apply(&opts, &decofile); err != nil {
		return domain.Options{}, zerr.With(err, "config", configPath)
	}

	if !filepath.IsAbs(opts.Tsconfig) {
		opts.Tsconfig = filepath.Join(filepath.Dir(configPath), opts.Tsconfig)
	}

	return opts, nil
}

func (l *Loader) apply(opts *domain.Options, f *Decofile) error {
	if f.Cache.Enabled != nil {
		opts.CachingEnabled = *f.Cache.Enabled
	}

	if f.Cache.Size != "" {
		mb, err := ParseCacheSize(f.Cache.Size)
		if err != nil {
			return err
		}
		opts.CacheCapacityMB = mb
	}

	if f.Force != nil {
		opts.ForceScan = *f.Force
	}

	if f.Extensions != "" {
		ext := domain.ExtensionFilter(strings.ToLower(f.Extensions))
		if !ext.Valid() {
			return errors.Join(
				domain.ErrInvalidExtensionFilter,
				zerr.With(zerr.New("unknown extension set"), "extensions", f.Extensions),
			)
		}
		opts.Extensions = ext
	}

	if f.Tsconfig != "" {
		opts.Tsconfig = f.Tsconfig
	}

	if f.Engine.Kind != "" {
		opts.Engine = domain.EngineKind(strings.ToLower(f.Engine.Kind))
	}
	opts.EngineCommand = f.Engine.Command

	if err := ValidateEngine(*opts); err != nil {
		return err
	}

	if f.Parallelism < 0 {
		l.Logger.Warn("parallelism must not be negative, using the number of CPUs")
	} else {
		opts.Parallelism = f.Parallelism
	}

	return nil
}

// ValidateEngine checks that the engine selection in opts can be constructed.
func ValidateEngine(opts domain.Options) error {
	switch opts.Engine {
	case domain.EngineEsbuild:
		return nil
	case domain.EngineCommand:
		if len(opts.EngineCommand) == 0 {
			return errors.Join(
				domain.ErrMissingEngineCommand,
				zerr.With(zerr.New("engine.command is empty"), "engine", string(opts.Engine)),
			)
		}
		return nil
	default:
		return errors.Join(domain.ErrInvalidEngine, zerr.With(zerr.New("unknown engine"), "engine", string(opts.Engine)))
	}
}

// ParseCacheSize converts a cache size into megabytes. A bare number is taken as
// megabytes; anything else is parsed as a byte size.
func ParseCacheSize(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if mb, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(mb) {
			return 0, zerr.With(zerr.New("invalid cache size"), "size", s)
		}
		return mb, nil
	}

	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "invalid cache size"), "size", s)
	}

	return float64(n) / 1e6, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd

	for {
		path := filepath.Join(currentDir, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func readAndUnmarshalYAML(path string, v any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is discovered from the working directory
	if err != nil {
		return errors.Join(domain.ErrConfigReadFailed, zerr.With(err, "path", path))
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Join(domain.ErrConfigParseFailed, zerr.With(err, "path", path))
	}

	return nil
}
