package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromFallsBackToRoot(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prev := Root()
	SetRoot(zap.New(core))
	defer SetRoot(prev)

	From(context.Background()).Info("hello")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "hello", logs.All()[0].Message)
}

func TestSubFromNamesAndStoresLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := Context(context.Background(), zap.New(core))

	logger, ctx := SubFrom(ctx, "assets")
	logger.Debug("decoded", zap.String("file", "px.jpg"))
	From(ctx).Info("again")

	require.Equal(t, 2, logs.Len())
	for _, e := range logs.All() {
		assert.Equal(t, "assets", e.LoggerName)
	}
	assert.Equal(t, "px.jpg", logs.All()[0].ContextMap()["file"])
}

func TestSetRootNil(t *testing.T) {
	prev := Root()
	defer SetRoot(prev)

	SetRoot(nil)
	assert.NotNil(t, Root())
	Root().Info("discarded")
}
