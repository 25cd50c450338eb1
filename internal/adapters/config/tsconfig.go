package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"go.trai.ch/deco/internal/adapters/strip"
	"go.trai.ch/deco/internal/core/domain"
	"go.trai.ch/zerr"
)

const emitDecoratorMetadataKey = "emitDecoratorMetadata"

// EmitsDecoratorMetadata reports whether the tsconfig at path, or the nearest file in
// its extends chain that sets it, enables compilerOptions.emitDecoratorMetadata.
//
// A missing tsconfig at path is not an error and reports false.
func (l *Loader) EmitsDecoratorMetadata(path string) (bool, error) {
	merged, err := l.mergedOptions(path)
	if err != nil || merged == nil {
		return false, err
	}

	raw, ok := merged[emitDecoratorMetadataKey]
	return ok && gjson.Parse(raw).Bool(), nil
}

// CompilerOptions returns the compilerOptions of the tsconfig at path merged over its
// extends chain as a JSON object with sorted keys. A missing tsconfig yields "".
func (l *Loader) CompilerOptions(path string) (string, error) {
	merged, err := l.mergedOptions(path)
	if err != nil || merged == nil {
		return "", err
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(k))
		b.WriteByte(':')
		b.WriteString(merged[k])
	}
	b.WriteByte('}')
	return b.String(), nil
}

func (l *Loader) mergedOptions(path string) (map[string]string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	merged := make(map[string]string)
	jsonc := strip.New(strip.WithStrings())
	if err := l.mergeChain(jsonc, path, make(map[string]bool), merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// mergeChain applies the compilerOptions of the chain rooted at path onto merged,
// parents first so that later extends entries and the file itself win.
// chain holds the files currently being resolved and detects extends loops.
func (l *Loader) mergeChain(jsonc *strip.Stripper, path string, chain map[string]bool, merged map[string]string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}

	if chain[abs] {
		return errors.Join(domain.ErrTsconfigCycle, zerr.With(zerr.New("extends loop"), "path", abs))
	}
	chain[abs] = true
	defer delete(chain, abs)

	data, err := os.ReadFile(abs) //nolint:gosec // path comes from the tsconfig extends chain
	if err != nil {
		return errors.Join(domain.ErrTsconfigReadFailed, zerr.With(err, "path", abs))
	}

	doc := jsonc.Strip(string(data))

	for _, spec := range extendsOf(doc) {
		parent, ok := resolveExtends(filepath.Dir(abs), spec)
		if !ok {
			l.Logger.Warn("cannot resolve tsconfig extends " + spec + " from " + abs)
			continue
		}
		if err := l.mergeChain(jsonc, parent, chain, merged); err != nil {
			return err
		}
	}

	gjson.Get(doc, "compilerOptions").ForEach(func(key, value gjson.Result) bool {
		merged[key.String()] = value.Raw
		return true
	})

	return nil
}

func extendsOf(doc string) []string {
	ext := gjson.Get(doc, "extends")
	switch {
	case ext.IsArray():
		var out []string
		for _, item := range ext.Array() {
			if s := item.String(); s != "" {
				out = append(out, s)
			}
		}
		return out
	case ext.Type == gjson.String && ext.String() != "":
		return []string{ext.String()}
	default:
		return nil
	}
}

// resolveExtends maps an extends specifier to a file, following the TypeScript rules
// for relative paths and node_modules packages.
func resolveExtends(dir, spec string) (string, bool) {
	var candidates []string

	if filepath.IsAbs(spec) || strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../") {
		base := spec
		if !filepath.IsAbs(base) {
			base = filepath.Join(dir, spec)
		}
		candidates = append(candidates, base, base+".json")
	} else {
		for current := dir; ; current = filepath.Dir(current) {
			base := filepath.Join(current, "node_modules", spec)
			candidates = append(candidates, base, base+".json", filepath.Join(base, "tsconfig.json"))
			if filepath.Dir(current) == current {
				break
			}
		}
	}

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, true
		}
	}
	return "", false
}
