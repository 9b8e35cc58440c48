package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCronCommand_PrintsCountTicksThenStops(t *testing.T) {
	var configPath string
	c := newCronCommand(&configPath)

	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs([]string{"--spec", "@every 10ms", "--count", "2"})

	done := make(chan error, 1)
	go func() { done <- c.Execute() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("cron command never finished")
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Equal(t, []string{"tick 0", "tick 1"}, lines)
}
