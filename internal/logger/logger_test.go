package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	prev := Log
	t.Cleanup(func() {
		Log = prev
		zap.ReplaceGlobals(zap.NewNop())
	})

	require.Error(t, Init("loud"))

	require.NoError(t, Init("debug"))
	require.True(t, Log.Core().Enabled(zapcore.DebugLevel))
	require.Same(t, Log, zap.L())

	require.NoError(t, Init("warn"))
	require.False(t, Log.Core().Enabled(zapcore.InfoLevel))
	require.True(t, Log.Core().Enabled(zapcore.WarnLevel))
}
