package prompt

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_TrimsAndPrompts(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  u@x.com  \nnext\n"))

	got, err := GetSimpleText(r, "Correo", &out)
	require.NoError(t, err)
	require.Equal(t, "u@x.com", got)
	require.Equal(t, "Correo\n> ", out.String())

	got, err = GetSimpleText(r, "Otro", &out)
	require.NoError(t, err)
	require.Equal(t, "next", got)
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("tail"))

	got, err := GetSimpleText(r, "p", io.Discard)
	require.NoError(t, err)
	require.Equal(t, "tail", got)
}

func TestGetSimpleText_EmptyEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(r, "p", io.Discard)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetSecret_NonTerminalReadsLine(t *testing.T) {
	in := strings.NewReader("tok-123\n")
	var out bytes.Buffer

	got, err := GetSecret(in, bufio.NewReader(in), "Token", &out)
	require.NoError(t, err)
	require.Equal(t, "tok-123", got)
	require.Equal(t, "Token: ", out.String())
}

func TestGetSecret_NonTerminalEOFIsEmpty(t *testing.T) {
	in := strings.NewReader("")

	got, err := GetSecret(in, bufio.NewReader(in), "Token", io.Discard)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestGetSecret_TerminalUsesReadPassword(t *testing.T) {
	origRead, origIs := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = origRead, origIs })

	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return []byte(" secret \n"), nil }

	var out bytes.Buffer
	got, err := GetSecret(os.Stdin, bufio.NewReader(strings.NewReader("")), "Token", &out)
	require.NoError(t, err)
	require.Equal(t, "secret", got)
	require.Equal(t, "Token: \n", out.String())
}

func TestGetSecret_TerminalError(t *testing.T) {
	origRead, origIs := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = origRead, origIs })

	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return nil, errors.New("tty gone") }

	_, err := GetSecret(os.Stdin, bufio.NewReader(strings.NewReader("")), "Token", io.Discard)
	require.ErrorContains(t, err, "tty gone")
}
