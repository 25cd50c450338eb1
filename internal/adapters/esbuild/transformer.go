// Package esbuild adapts the esbuild Go API as an in-process transformation engine
// and as the bundler host that calls the pipeline from its load hook.
package esbuild

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/tidwall/gjson"
	"go.trai.ch/deco/internal/core/domain"
	"go.trai.ch/deco/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Transformer = (*Transformer)(nil)

// decoratorTsconfig enables legacy decorators so esbuild lowers them.
const decoratorTsconfig = `{"compilerOptions":{"experimentalDecorators":true}}`

// tsconfigRaw embeds the project compiler options, forcing experimentalDecorators on.
// esbuild does not emit design-type metadata whatever the options say.
func tsconfigRaw(compilerOptions string) string {
	if compilerOptions == "" {
		return decoratorTsconfig
	}

	var b strings.Builder
	b.WriteString(`{"compilerOptions":{`)
	gjson.Parse(compilerOptions).ForEach(func(key, value gjson.Result) bool {
		if key.String() == "experimentalDecorators" {
			return true
		}
		b.WriteString(strconv.Quote(key.String()))
		b.WriteByte(':')
		b.WriteString(value.Raw)
		b.WriteByte(',')
		return true
	})
	b.WriteString(`"experimentalDecorators":true}}`)
	return b.String()
}

// Transformer transforms TypeScript sources with api.Transform.
type Transformer struct {
	target api.Target
}

// NewTransformer creates a new Transformer emitting ES2020 modules.
func NewTransformer() *Transformer {
	return &Transformer{target: api.ES2020}
}

// Transform lowers the TypeScript in content to JavaScript under the project compiler options.
func (t *Transformer) Transform(
	ctx context.Context,
	id domain.FileID,
	content string,
	opts domain.TransformOptions,
) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := id.String()
	result := api.Transform(content, api.TransformOptions{
		Loader:      loaderFor(path),
		Sourcefile:  path,
		Target:      t.target,
		Format:      api.FormatESModule,
		TsconfigRaw: tsconfigRaw(opts.CompilerOptions),
		LogLevel:    api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		return "", messagesError(result.Errors)
	}

	return string(result.Code), nil
}

// loaderFor picks the esbuild loader from the file extension.
func loaderFor(path string) api.Loader {
	if strings.EqualFold(filepath.Ext(path), ".tsx") {
		return api.LoaderTSX
	}
	return api.LoaderTS
}

// messagesError joins esbuild messages into a single error, each carrying its location.
func messagesError(msgs []api.Message) error {
	var errs error
	for _, msg := range msgs {
		err := zerr.New(msg.Text)
		if loc := msg.Location; loc != nil {
			err = zerr.With(err, "file", loc.File)
			err = zerr.With(err, "line", loc.Line)
			err = zerr.With(err, "column", loc.Column)
		}
		errs = errors.Join(errs, err)
	}
	return errs
}
