package flagx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs_SeparateValueForm(t *testing.T) {
	args := []string{"-a", "http://localhost:8000", "-x", "ignored", "-t", "15"}
	got := FilterArgs(args, []string{"-a", "-t"})
	require.Equal(t, []string{"-a", "http://localhost:8000", "-t", "15"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--config=conf.json", "-a=http://x", "-z=nope"}
	got := FilterArgs(args, []string{"--config", "-a"})
	require.Equal(t, []string{"--config=conf.json", "-a=http://x"}, got)
}

func TestFilterArgs_FlagWithoutValue(t *testing.T) {
	args := []string{"-v", "-a", "addr"}
	got := FilterArgs(args, []string{"-v"})
	require.Equal(t, []string{"-v"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-a"})
	require.NotNil(t, got)
	require.Empty(t, got)
}
