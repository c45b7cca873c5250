package argv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsed_Accessors(t *testing.T) {
	parsed := Parse([]string{
		"node", "index.js",
		"-verbose", "-port=8080", "-name=demo", `-meta={"tags":["a","b"]}`,
		"input.txt",
	})

	assert.Equal(t, []string{"input.txt"}, parsed.Args)

	assert.True(t, parsed.Bool("-verbose", false))
	assert.False(t, parsed.Bool("-quiet", false))
	assert.True(t, parsed.Bool("-quiet", true))

	assert.Equal(t, 8080.0, parsed.Number("-port", 80))
	assert.Equal(t, 3.0, parsed.Number("-retries", 3))
	assert.Equal(t, 80.0, parsed.Number("-name", 80))

	assert.Equal(t, "demo", parsed.Text("-name", "anon"))
	assert.Equal(t, "anon", parsed.Text("-user", "anon"))

	assert.Equal(t, map[string]any{"tags": []any{"a", "b"}}, parsed.JSON("-meta", nil))
	assert.Equal(t, "fallback", parsed.JSON("-name", "fallback"))

	assert.Equal(t, NumberValue(8080), parsed.Flag("-p", FlagNumber, NumberValue(0)))

	assert.True(t, parsed.Has("-port"))
	assert.True(t, parsed.Has("-v"))
	assert.False(t, parsed.Has("-x"))
}
