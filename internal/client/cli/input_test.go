package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetPassword_NotATerminalReadsLine(t *testing.T) {
	var out bytes.Buffer
	pw, err := GetPassword(rdr("secret\nnext\n"), "Password", &out, false)
	require.NoError(t, err)
	assert.Equal(t, "secret", string(pw))
	assert.Equal(t, "Password: \n", out.String())
}

func TestGetPassword_Terminal(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func(int) ([]byte, error) { return []byte("hidden"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(rdr("not used\n"), "Password", &out, true)
	require.NoError(t, err)
	assert.Equal(t, "hidden", string(pw))

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetPassword(rdr(""), "Password", &out, true)
	require.Error(t, err)
}

func TestStdinIsTerminal(t *testing.T) {
	old := isTerminal
	t.Cleanup(func() { isTerminal = old })
	isTerminal = func(int) bool { return true }

	assert.True(t, StdinIsTerminal(os.Stdin))
	assert.False(t, StdinIsTerminal(strings.NewReader("x")))

	isTerminal = func(int) bool { return false }
	assert.False(t, StdinIsTerminal(os.Stdin))
}
