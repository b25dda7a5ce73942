package analyzer

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/basedalex/textlens/pkg/engine"
)

// Engine is the NLP surface the analyzer consumes. Every method degrades to
// an empty result when the underlying model has nothing to say.
type Engine interface {
	DetectLanguage(text string) string
	Sentiment(text string) float64
	Lemmas(text, lang string) ([]string, error)
	Alternatives(word, lang string, limit int) []engine.Alternative
	Entities(text string, wanted map[engine.Category]bool) ([]engine.Entity, error)
}

// Options selects which analysis passes run. All force-enables every pass.
type Options struct {
	DetectLanguage  bool
	Sentiment       bool
	Lemmatize       bool
	Alternatives    bool
	People          bool
	Places          bool
	Organizations   bool
	All             bool
	MaxAlternatives int
	DefaultLanguage string
}

func (o Options) normalized() Options {
	if o.All {
		o.DetectLanguage = true
		o.Sentiment = true
		o.Lemmatize = true
		o.Alternatives = true
		o.People = true
		o.Places = true
		o.Organizations = true
	}

	if o.DefaultLanguage == "" {
		o.DefaultLanguage = "en"
	}

	return o
}

type Analyzer struct {
	engine Engine
	out    io.Writer
}

func New(engine Engine, out io.Writer) *Analyzer {
	return &Analyzer{engine: engine, out: out}
}

// Run executes the enabled passes over text in fixed order (language,
// sentiment, lemmas, alternatives, entities) and prints one block per pass,
// each followed by a blank line after the leading one.
func (a *Analyzer) Run(text string, opts Options) {
	opts = opts.normalized()

	fmt.Fprintln(a.out)

	lang := opts.DefaultLanguage

	if opts.DetectLanguage {
		detected := a.engine.DetectLanguage(text)
		fmt.Fprintf(a.out, "Detected language: %s\n\n", detected)

		if detected != engine.Undetermined {
			lang = detected
		}
	}

	if opts.Sentiment {
		fmt.Fprintf(a.out, "Sentiment: %.2f\n\n", a.engine.Sentiment(text))
	}

	var lemmas []string
	if opts.Lemmatize || opts.Alternatives {
		var err error
		lemmas, err = a.engine.Lemmas(text, lang)
		if err != nil {
			log.Warn("error finding lemmas: ", err)
			lemmas = nil
		}
	}

	if opts.Lemmatize {
		fmt.Fprintln(a.out, "Found the following lemmas:")
		for _, lemma := range lemmas {
			fmt.Fprintln(a.out, lemma)
		}
		fmt.Fprintln(a.out)
	}

	if opts.Alternatives {
		a.printAlternatives(lemmas, lang, opts.MaxAlternatives)
	}

	if opts.People || opts.Places || opts.Organizations {
		a.printEntities(text, opts)
	}
}

func (a *Analyzer) printAlternatives(lemmas []string, lang string, limit int) {
	fmt.Fprintln(a.out, "Found the following alternatives:")

	for _, lemma := range lemmas {
		alternatives := a.engine.Alternatives(lemma, lang, limit)
		if len(alternatives) > limit {
			alternatives = alternatives[:limit]
		}
		if len(alternatives) == 0 {
			continue
		}

		fmt.Fprintf(a.out, "%s:\n", lemma)
		for _, alternative := range alternatives {
			fmt.Fprintf(a.out, "  %s (%.4f)\n", alternative.Word, alternative.Distance)
		}
	}

	fmt.Fprintln(a.out)
}

func (a *Analyzer) printEntities(text string, opts Options) {
	wanted := map[engine.Category]bool{
		engine.CategoryPerson:       opts.People,
		engine.CategoryPlace:        opts.Places,
		engine.CategoryOrganization: opts.Organizations,
	}

	entities, err := a.engine.Entities(text, wanted)
	if err != nil {
		log.Warn("error finding entities: ", err)
		entities = nil
	}

	fmt.Fprintln(a.out, "Found the following entities:")
	for _, entity := range entities {
		fmt.Fprintf(a.out, "%s: %s\n", categoryLabel(entity.Category), entity.Text)
	}
	fmt.Fprintln(a.out)
}

func categoryLabel(c engine.Category) string {
	switch c {
	case engine.CategoryPerson:
		return "Person"
	case engine.CategoryPlace:
		return "Place"
	case engine.CategoryOrganization:
		return "Organization"
	}

	return ""
}
