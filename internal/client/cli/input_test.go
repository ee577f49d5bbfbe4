package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	require.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetTextWithDefault(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		current string
		want    string
		prompt  string
	}{
		{name: "blank keeps current", input: "\n", current: "Alice", want: "Alice", prompt: "Name [Alice]\n> "},
		{name: "value replaces current", input: "Bob\n", current: "Alice", want: "Bob", prompt: "Name [Alice]\n> "},
		{name: "no current", input: "\n", current: "", want: "", prompt: "Name\n> "},
		{name: "CRLF trimmed", input: "Bob\r\n", current: "Alice", want: "Bob", prompt: "Name [Alice]\n> "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetTextWithDefault(rdr(tc.input), "Name", tc.current, &out)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.prompt, out.String())
		})
	}
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }

	var out bytes.Buffer
	pw, err := GetPassword(&out, "Enter password")
	require.NoError(t, err)
	require.Equal(t, []byte("s3cret"), pw)
	require.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out, "Enter password")
	require.Error(t, err)
}

func TestWipe(t *testing.T) {
	b := []byte("secret")
	wipe(b)
	require.Equal(t, make([]byte, 6), b)
}
