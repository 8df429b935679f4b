package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("  12 \nsecond\nlast"), &out)

	answer, err := p.Ask("Select item: ")
	require.NoError(t, err)
	assert.Equal(t, "12", answer)
	assert.Equal(t, "Select item: ", out.String())

	answer, err = p.Ask("> ")
	require.NoError(t, err)
	assert.Equal(t, "second", answer)

	// no trailing newline
	answer, err = p.Ask("> ")
	require.NoError(t, err)
	assert.Equal(t, "last", answer)

	// exhausted input reads as empty
	answer, err = p.Ask("> ")
	require.NoError(t, err)
	assert.Equal(t, "", answer)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{" y \n", true},
		{"yes\n", false},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			p := New(strings.NewReader(tt.input), &bytes.Buffer{})
			ok, err := p.Confirm("? ")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"3", 3, true},
		{"0", 0, true},
		{"+2", 2, true},
		{"007", 7, true},
		{"-1", 0, false},
		{"-0", 0, false},
		{"++1", 0, false},
		{"", 0, false},
		{"1.5", 0, false},
		{"99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, err := ParseChoice(tt.input)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}
