package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/deco/internal/adapters/telemetry"
	"go.trai.ch/deco/internal/app"
	"go.trai.ch/deco/internal/core/domain"
	"go.trai.ch/deco/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func provide(application *app.App, logger *mocks.MockLogger) ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:       application,
			Logger:    logger,
			Telemetry: telemetry.NewNoOp(),
		}, func() {}, nil
	}
}

func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	application := app.New(app.Dependencies{Logger: mockLogger})

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provide(application, mockLogger))

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "deco version")
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLoader := mocks.NewMockConfigLoader(ctrl)

	application := app.New(app.Dependencies{Logger: mockLogger, ConfigLoader: mockLoader})

	mockLoader.EXPECT().Load(".").Return(domain.Options{}, domain.ErrConfigParseFailed)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
	})

	exitCode := run(context.Background(), []string{"scan", "src"}, new(bytes.Buffer), new(bytes.Buffer), provide(application, mockLogger))
	assert.Equal(t, 1, exitCode)
}
