package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAddr(t *testing.T) {
	valid := []string{":8080", "127.0.0.1:3400", "localhost:0", "0.0.0.0:65535"}
	for _, addr := range valid {
		assert.NoError(t, validateAddr(addr), addr)
	}

	invalid := []string{"", "8080", ":", ":notaport", ":70000", "bad host:8080"}
	for _, addr := range invalid {
		assert.Error(t, validateAddr(addr), addr)
	}
}

func TestVersionString(t *testing.T) {
	s := versionString()
	assert.Contains(t, s, "aiconic")
	assert.Contains(t, s, Version)
}

func TestRootRegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "migrate", "version"} {
		require.True(t, names[want], "missing %s command", want)
	}
}
