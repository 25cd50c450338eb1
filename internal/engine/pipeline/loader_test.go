package pipeline_test

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/deco/internal/adapters/cache"
	"go.trai.ch/deco/internal/adapters/fingerprint"
	"go.trai.ch/deco/internal/adapters/scan"
	"go.trai.ch/deco/internal/adapters/strip"
	"go.trai.ch/deco/internal/core/domain"
	"go.trai.ch/deco/internal/core/ports/mocks"
	"go.trai.ch/deco/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

func TestLoader_ReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockFileReader(ctrl)
	rc := mocks.NewMockResultCache(ctrl)
	transformer := mocks.NewMockTransformer(ctrl)

	reader.EXPECT().ReadFile(gomock.Any(), "missing.ts").Return("", fs.ErrNotExist)

	o := pipeline.NewOrchestrator(fingerprint.New(), scan.NewScanner(strip.New()), transformer, rc)
	loader := pipeline.NewLoader(reader, o)

	res := loader.Load(context.Background(), "missing.ts", true)

	require.Equal(t, domain.ResultFailure, res.Kind)
	require.ErrorIs(t, res.Err, domain.ErrReadFailed)
	require.ErrorIs(t, res.Err, fs.ErrNotExist)
	assert.Equal(t, "missing.ts", metadata(res.Err, "path"))
}

func TestLoader_ProcessesContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockFileReader(ctrl)

	reader.EXPECT().ReadFile(gomock.Any(), "a.ts").Return(decorated, nil).Times(2)

	tr := &countingTransformer{out: "out"}
	o := pipeline.NewOrchestrator(fingerprint.New(), scan.NewScanner(strip.New()), tr, cache.New(1<<20))
	loader := pipeline.NewLoader(reader, o)

	first := loader.Load(context.Background(), "a.ts", true)
	second := loader.Load(context.Background(), "a.ts", true)

	assert.Equal(t, domain.Replace("out"), first)
	assert.True(t, second.Cached)
	assert.Equal(t, int32(1), tr.calls.Load())
	assert.Same(t, o, loader.Orchestrator())
}
