package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNopByDefault(t *testing.T) {
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() {
		Logger.Infow("before initialize", "key", "value")
	})
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zap.AtomicLevel{
		"debug":   zap.NewAtomicLevelAt(zap.DebugLevel),
		"WARN":    zap.NewAtomicLevelAt(zap.WarnLevel),
		"warning": zap.NewAtomicLevelAt(zap.WarnLevel),
		"error":   zap.NewAtomicLevelAt(zap.ErrorLevel),
		"":        zap.NewAtomicLevelAt(zap.InfoLevel),
		"bogus":   zap.NewAtomicLevelAt(zap.InfoLevel),
	}
	for in, want := range cases {
		assert.Equal(t, want.Level(), ParseLevel(in), "level %q", in)
	}
}

func TestInitialize(t *testing.T) {
	prev := Logger
	defer func() {
		Logger = prev
		JSONOutput = false
	}()

	require.NoError(t, Initialize(Options{JSON: true, Level: "debug"}))
	assert.True(t, JSONOutput)
	assert.True(t, Logger.Desugar().Core().Enabled(zap.DebugLevel))

	require.NoError(t, Initialize(Options{Level: "error"}))
	assert.False(t, JSONOutput)
	assert.False(t, Logger.Desugar().Core().Enabled(zap.WarnLevel))
	assert.True(t, Logger.Desugar().Core().Enabled(zap.ErrorLevel))
}
