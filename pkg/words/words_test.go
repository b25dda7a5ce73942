package words

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLemmatize(t *testing.T) {
	lemmatizer, err := NewLemmatizer()
	assert.NoError(t, err)

	tests := []struct {
		name           string
		input          string
		lang           string
		expectedOutput []string
		expectedError  bool
	}{
		{
			name:           "english dictionary forms",
			input:          "we agreed",
			lang:           "en",
			expectedOutput: []string{"we", "agree"},
		},
		{
			name:           "punctuation is dropped",
			input:          "hello, world!",
			lang:           "en",
			expectedOutput: []string{"hello", "world"},
		},
		{
			name:           "duplicates are kept in order",
			input:          "run run run",
			lang:           "en",
			expectedOutput: []string{"run", "run", "run"},
		},
		{
			name:           "unknown language passes words through",
			input:          "kaixo mundua",
			lang:           "eu",
			expectedOutput: []string{"kaixo", "mundua"},
		},
		{
			name:          "empty input",
			input:         "",
			lang:          "en",
			expectedError: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			output, err := lemmatizer.Lemmatize(test.input, test.lang)
			if test.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.expectedOutput, output)
		})
	}
}

func TestLemmatizeNoEmptyEntries(t *testing.T) {
	lemmatizer, err := NewLemmatizer()
	assert.NoError(t, err)

	output, err := lemmatizer.Lemmatize("some words ... and -- markers !!", "en")
	assert.NoError(t, err)

	for _, lemma := range output {
		assert.NotEqual(t, "", strings.TrimSpace(lemma))
	}
}

func TestIsWord(t *testing.T) {
	assert.Equal(t, true, isWord("word"))
	assert.Equal(t, true, isWord("42"))
	assert.Equal(t, false, isWord("..."))
	assert.Equal(t, false, isWord("--"))
}
