package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusString(t *testing.T) {
	assert.Equal(t, "…", StatusPending.String())
	assert.Equal(t, "RUN", StatusRunning.String())
	assert.Equal(t, "OK", StatusOk.String())
	assert.Equal(t, "FAIL", StatusFailed.String())
	assert.Equal(t, "STOP", StatusStopped.String())
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusRunning.Terminal())
	assert.True(t, StatusOk.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.True(t, StatusStopped.Terminal())
}
