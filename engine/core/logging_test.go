package core

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyLogConfig(t *testing.T) {
	defer func() { _ = ApplyLogConfig(DefaultConfig().Log) }()

	require.NoError(t, ApplyLogConfig(LogConfig{Level: "debug", Prefix: "test "}))
	assert.Equal(t, log.DebugLevel, getLogger().GetLevel())
	assert.Equal(t, "test ", getLogger().GetPrefix())

	// empty fields leave the logger untouched
	require.NoError(t, ApplyLogConfig(LogConfig{}))
	assert.Equal(t, log.DebugLevel, getLogger().GetLevel())

	assert.Error(t, SetLogLevel("loud"))
}
