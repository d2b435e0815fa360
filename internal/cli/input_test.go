package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain line", "Casa\n", "Casa"},
		{"trims spaces", "  Casa  \n", "Casa"},
		{"partial line at EOF", "Casa", "Casa"},
		{"empty line", "\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetSimpleText(bufio.NewReader(strings.NewReader(tt.input)), "- Enter name", &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "- Enter name")
		})
	}
}

func TestGetSimpleText_EOFWithoutInput(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(bufio.NewReader(strings.NewReader("")), "- Enter name", &out)
	require.Error(t, err)
}

func TestGetNote_SkipsWhenNotInteractive(t *testing.T) {
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })
	isTerminal = func() bool { return false }

	var out bytes.Buffer
	got, err := GetNote(bufio.NewReader(strings.NewReader("ignored\n")), nil, &out)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, out.String())
}

func TestGetNote_ListsSuggestions(t *testing.T) {
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })
	isTerminal = func() bool { return true }

	var out bytes.Buffer
	got, err := GetNote(bufio.NewReader(strings.NewReader("Salí apurado\n")),
		[]string{"Salí apurado", "Todo en orden"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "Salí apurado", got)
	assert.Contains(t, out.String(), "Salí apurado | Todo en orden")
}
