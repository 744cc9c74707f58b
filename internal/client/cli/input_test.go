package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("a@b.com\n"))
	var out bytes.Buffer

	got, err := GetSimpleText(in, "Enter email", &out)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", got)
	require.Contains(t, out.String(), "Enter email")
}

func TestGetSimpleText_EOFReturnsPartialLine(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer

	got, err := GetSimpleText(in, "Enter email", &out)
	require.NoError(t, err)
	require.Equal(t, "lastline", got)
}

func TestGetPassword_StubbedTerminal(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return []byte("secret"), nil }

	var out bytes.Buffer
	got, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, "secret", got)
	require.Contains(t, out.String(), "Enter password")
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }

	var out bytes.Buffer
	_, err := GetPassword(&out)
	require.Error(t, err)
}
