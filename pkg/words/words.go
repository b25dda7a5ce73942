package words

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"
	"github.com/kljensen/snowball"
)

// snowballLangs maps language tags to the stemmer languages snowball ships.
var snowballLangs = map[string]string{
	"en": "english",
	"es": "spanish",
	"fr": "french",
	"hu": "hungarian",
	"no": "norwegian",
	"ru": "russian",
	"sv": "swedish",
}

type Lemmatizer struct {
	dict *golem.Lemmatizer
}

func NewLemmatizer() (*Lemmatizer, error) {
	dict, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("error loading lemma dictionary: %w", err)
	}

	return &Lemmatizer{dict: dict}, nil
}

// Lemmatize returns the lemma of every word-level token in str, in input
// order. Duplicates are kept; tokens that reduce to nothing are skipped.
func (l *Lemmatizer) Lemmatize(str, lang string) ([]string, error) {
	if len(str) == 0 {
		return nil, errors.New("please provide a string to be lemmatized")
	}

	doc, err := prose.NewDocument(str, prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("error tokenizing: %w", err)
	}

	var res []string

	for _, tok := range doc.Tokens() {
		if !isWord(tok.Text) {
			continue
		}

		lemma := strings.TrimSpace(l.lemma(tok.Text, lang))
		if lemma == "" {
			continue
		}

		res = append(res, lemma)
	}

	return res, nil
}

func (l *Lemmatizer) lemma(word, lang string) string {
	word = strings.ToLower(word)

	if lang == "en" || lang == "" {
		return l.dict.Lemma(word)
	}

	if name, ok := snowballLangs[lang]; ok {
		stemmed, err := snowball.Stem(word, name, true)
		if err == nil {
			return stemmed
		}
	}

	return word
}

// isWord reports whether the token carries at least one letter or digit,
// which filters out punctuation tokens.
func isWord(s string) bool {
	for _, c := range s {
		if unicode.IsLetter(c) || unicode.IsNumber(c) {
			return true
		}
	}

	return false
}
