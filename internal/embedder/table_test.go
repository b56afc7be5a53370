package embedder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	text := "{ R\"xxx(a.glsl)xxx\", R\"xxx(one\n)xxx\" },\n{ R\"xxx(b.glsl)xxx\", R\"xxx(two)xxx\" }"

	table, err := Parse(text, "xxx")
	require.NoError(t, err)
	assert.Equal(t, Table{"a.glsl": "one\n", "b.glsl": "two"}, table)
	assert.Equal(t, "", table.Get("missing.glsl"))
}

func TestParseEmpty(t *testing.T) {
	table, err := Parse("", "xxx")
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"missing brace", `R"xxx(a)xxx", R"xxx(b)xxx" }`},
		{"wrong delimiter", `{ R"yyy(a)yyy", R"yyy(b)yyy" }`},
		{"unterminated", `{ R"xxx(a)xxx", R"xxx(b }`},
		{"trailing separator", "{ R\"xxx(a)xxx\", R\"xxx(b)xxx\" },\n"},
		{"duplicate key", "{ R\"xxx(a)xxx\", R\"xxx(1)xxx\" },\n{ R\"xxx(a)xxx\", R\"xxx(2)xxx\" }"},
		{"trailing newline", "{ R\"xxx(a)xxx\", R\"xxx(b)xxx\" }\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text, "xxx")
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	entries := []Entry{
		{Name: "accumulate_tex_frag.glsl", Contents: "uniform sampler2D u;\n\"q\"\n"},
		{Name: "present_tex_frag.glsl", Contents: ""},
	}

	text, err := Format(entries, "xxx")
	require.NoError(t, err)

	table, err := Parse(text, "xxx")
	require.NoError(t, err)
	require.Len(t, table, len(entries))
	for _, e := range entries {
		assert.Equal(t, e.Contents, table.Get(e.Name))
	}
}
