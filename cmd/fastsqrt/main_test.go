package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdRunsReport(t *testing.T) {
	cmd := newRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--iterations", "10000"})

	require.NoError(t, cmd.Execute())

	report := out.String()
	assert.Contains(t, report, "quick validation:")
	assert.Contains(t, report, "maximum errors:")
	assert.Contains(t, report, "throughput (10000 calls per method):")
	for _, name := range []string{"newton", "bisect", "rsqrt", "bithack", "hardware", "optimal", "reference"} {
		assert.Contains(t, report, name)
	}
}

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"unexpected"})

	assert.Error(t, cmd.Execute())
}

func TestRootCmdRejectsBadIterations(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--iterations", "0"})

	assert.Error(t, cmd.Execute())
}
