// Package engine wraps the pre-trained NLP providers behind one type:
// language identification, sentiment scoring, lemma tagging, word-embedding
// lookup and named-entity tagging. All models are loaded in-process; no
// analysis result is persisted.
package engine

import (
	"fmt"

	"github.com/drankou/go-vader/vader"
	log "github.com/sirupsen/logrus"

	"github.com/basedalex/textlens/pkg/config"
	"github.com/basedalex/textlens/pkg/words"
)

// Alternative is a single embedding-space neighbor of a lemma.
type Alternative struct {
	Word     string
	Distance float64
}

type Category string

const (
	CategoryPerson       Category = "person"
	CategoryPlace        Category = "place"
	CategoryOrganization Category = "organization"
)

// Entity is a named entity matched in the input text.
type Entity struct {
	Category Category
	Text     string
}

type Engine struct {
	sentiment  vader.SentimentIntensityAnalyzer
	lemmatizer *words.Lemmatizer
	vectors    *VectorStore
}

func New(cfg *config.Config) (*Engine, error) {
	lemmatizer, err := words.NewLemmatizer()
	if err != nil {
		return nil, fmt.Errorf("error creating lemmatizer: %w", err)
	}

	e := &Engine{
		lemmatizer: lemmatizer,
		vectors:    NewVectorStore(cfg.Vectors),
	}

	if cfg.SentimentLexicon != "" && cfg.EmojiLexicon != "" {
		err = e.sentiment.Init(cfg.SentimentLexicon, cfg.EmojiLexicon)
	} else {
		err = e.sentiment.Init()
	}
	if err != nil {
		// no lexicon means every text scores 0.0, which is the documented
		// fallback rather than a failure
		log.Warn("error loading sentiment lexicon: ", err)
	}

	return e, nil
}

// Lemmas returns the lemma of every word in text, in input order.
func (e *Engine) Lemmas(text, lang string) ([]string, error) {
	return e.lemmatizer.Lemmatize(text, lang)
}

// Alternatives returns up to limit embedding-space neighbors of word in the
// vector space for lang. A language without vectors yields an empty list.
func (e *Engine) Alternatives(word, lang string, limit int) []Alternative {
	return e.vectors.Neighbors(word, lang, limit)
}
