package logger_test

import (
	"context"
	"hunter/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWith_AttachesFieldsToContext(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.With(ctx, zap.String("runID", "abc"))

	logger.Info(ctx, "hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "hello", entries[0].Message)
	require.Equal(t, "abc", entries[0].ContextMap()["runID"])
}

func TestGet_FallsBackWithoutContextLogger(t *testing.T) {
	require.NotNil(t, logger.Get(context.Background()))
}
