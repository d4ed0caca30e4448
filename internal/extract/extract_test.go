package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
	"github.com/KirkDiggler/rpg-levelgen/internal/extract"
)

const interior = `{"platforms":[{"x":0,"y":0,"width":10}],"difficulty":3}`

func TestDocument_FencedMatchesBare(t *testing.T) {
	bare, err := extract.Document(interior)
	require.NoError(t, err)

	wrappers := []string{
		"```json\n" + interior + "\n```",
		"```JSON\r\n" + interior + "\r\n```",
		"```\n" + interior + "\n```",
		"Here is your level:\n```json\n" + interior + "\n```\nHave fun!",
		"```json " + interior + "```",
		"   " + interior + "\n\n",
	}

	for _, raw := range wrappers {
		got, err := extract.Document(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, bare, got, raw)
	}
}

func TestDocument_UsesFirstFence(t *testing.T) {
	got, err := extract.Document("```json\n{\"a\":1}\n```\n```json\n{\"b\":2}\n```")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(1)}, got)
}

func TestDocument_Errors(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "  \n "},
		{"prose", "Sorry, I cannot build that level."},
		{"truncated", "```json\n{\"platforms\": [\n```"},
		{"empty fence", "```json\n```"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := extract.Document(tc.raw)
			assert.Nil(t, doc)
			require.Error(t, err)
			assert.True(t, errors.IsParseError(err))
		})
	}
}

func TestDocument_SingleLineFenceKeepsContent(t *testing.T) {
	testCases := []struct {
		raw      string
		expected any
	}{
		{"```true```", true},
		{"```null```", nil},
		{"```42```", float64(42)},
		{"```[1]```", []any{float64(1)}},
		{"```json\ntrue\n```", true},
		{"```json true```", true},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := extract.Document(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestDocument_NonObjectIsStillParsed(t *testing.T) {
	got, err := extract.Document("```\n[1, 2]\n```")
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1), float64(2)}, got)
}
