package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumKey(t *testing.T) {
	cases := map[string]string{
		"Full-time":     "full_time",
		"full time":     "full_time",
		"FULL_TIME":     "full_time",
		" part - time ": "part_time",
		"":              "",
	}
	for in, want := range cases {
		assert.Equal(t, want, EnumKey(in), "EnumKey(%q)", in)
	}
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Software Engineer", "ENGINEER"))
	assert.True(t, ContainsFold("anything", ""))
	assert.False(t, ContainsFold("Designer", "engineer"))
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Tokens(" a, b,,c ,"))
	assert.Nil(t, Tokens(""))
}

func TestSanitizer(t *testing.T) {
	s := NewSanitizer()

	t.Run("clean drops scripts", func(t *testing.T) {
		got := s.Clean(`<p>Go <b>dev</b></p><script>alert(1)</script>`)
		assert.Equal(t, "<p>Go <b>dev</b></p>", got)
	})
}
