package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"bob", "BOB"},
		{"Bob", "Bob"},
		{"BOB", "BOB"},
		{"bobby", "bobby"},
		{" bob", " bob"},
		{"toto", "toto"},
		{"", ""},
		{"été", "été"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatName(c.input), "FormatName(%q)", c.input)
	}
}

func TestFormatName_Idempotent(t *testing.T) {
	for _, v := range []string{"bob", "BOB", "Bob", "titi", "", "bob\n"} {
		once := FormatName(v)
		assert.Equal(t, once, FormatName(once), "FormatName not idempotent for %q", v)
	}
}

func TestIsSpecialName(t *testing.T) {
	assert.True(t, IsSpecialName("bob"))
	assert.False(t, IsSpecialName("BOB"))
	assert.False(t, IsSpecialName(""))
}
