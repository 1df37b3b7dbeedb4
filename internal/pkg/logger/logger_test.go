package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitAndLevelChange(t *testing.T) {
	require.NoError(t, Init("info", "json"))
	require.Equal(t, zapcore.InfoLevel, atomicLevel.Level())

	require.NoError(t, SetLevel("debug"))
	require.Equal(t, zapcore.DebugLevel, atomicLevel.Level())

	// Init is once-only; a second call must not reset the level.
	require.NoError(t, Init("error", "console"))
	require.Equal(t, zapcore.DebugLevel, atomicLevel.Level())
}

func TestInitRejectsBadLevel(t *testing.T) {
	require.Error(t, SetLevel("verbose"))
}
