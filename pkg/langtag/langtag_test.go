package langtag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"en":          "en",
		"EN":          "en",
		"EN-us":       "en-US",
		"pt-br":       "pt-BR",
		"zh-hant":     "zh-Hant",
		"not a tag!!": "not a tag!!",
		"":            "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "Normalize(%q)", in)
	}
}
