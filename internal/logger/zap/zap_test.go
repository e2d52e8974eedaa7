package zap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_ErrorwAppendsError(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	lg := FromZap(zap.New(core)).Named("ballou")

	lg.Errorw("Fail to send", errors.New("boom"), "status_code", 500)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ballou", entries[0].LoggerName)

	fields := entries[0].ContextMap()
	assert.Equal(t, int64(500), fields["status_code"])
	assert.Equal(t, "boom", fields["error"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	lg := FromZap(zap.New(core))

	lg.Infow("dropped")
	lg.Warnw("kept", "k", "v")

	require.Len(t, logs.All(), 1)
	assert.Equal(t, "kept", logs.All()[0].Message)
}

func TestNew_UnknownLevelDefaultsToInfo(t *testing.T) {
	lg := New("verbose", false)

	assert.True(t, lg.l.Core().Enabled(zap.InfoLevel))
	assert.False(t, lg.l.Core().Enabled(zap.DebugLevel))
}
