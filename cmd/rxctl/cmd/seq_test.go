package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeqCommand_PrintsEachValue(t *testing.T) {
	var configPath string
	c := newSeqCommand(&configPath)

	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs([]string{"--values", "3, 1, 4"})

	require.NoError(t, c.Execute())
	assert.Equal(t, "3\n1\n4\n", out.String())
}

func TestSeqCommand_SkipsBlankEntries(t *testing.T) {
	var configPath string
	c := newSeqCommand(&configPath)

	var out bytes.Buffer
	c.SetOut(&out)
	c.SetArgs([]string{"--values", "1,,2"})

	require.NoError(t, c.Execute())
	assert.Equal(t, "1\n2\n", out.String())
}

func TestSeqCommand_InvalidValueErrors(t *testing.T) {
	var configPath string
	c := newSeqCommand(&configPath)

	var out, errOut bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&errOut)
	c.SilenceUsage = true
	c.SilenceErrors = true
	c.SetArgs([]string{"--values", "1,x,2"})

	assert.Error(t, c.Execute())
}
