package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalCommand_PrintsCountTicksThenStops(t *testing.T) {
	var configPath string
	c := newIntervalCommand(&configPath)

	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs([]string{"--period", "1ms", "--count", "3"})

	done := make(chan error, 1)
	go func() { done <- c.Execute() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("interval command never finished")
	}

	assert.Equal(t, "tick 0\ntick 1\ntick 2\n", out.String())
}
