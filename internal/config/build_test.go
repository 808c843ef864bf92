package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuildInfo_DevDefaults(t *testing.T) {
	info := NewBuildInfo()

	assert.Equal(t, "dev", info.Version)
	assert.Equal(t, "none", info.Commit)
	assert.Equal(t, "unknown", info.BuildTime)
}
