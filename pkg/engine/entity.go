package engine

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// entityCategories maps the tagger's labels to entity categories. Labels
// outside this map are dropped.
var entityCategories = map[string]Category{
	"PERSON": CategoryPerson,
	"GPE":    CategoryPlace,
	"LOC":    CategoryPlace,
	"ORG":    CategoryOrganization,
}

// Entities returns the named entities of text whose category is wanted, in
// match order. Multi-word names arrive from the tagger already joined.
func (e *Engine) Entities(text string, wanted map[Category]bool) ([]Entity, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("error tagging entities: %w", err)
	}

	return filterEntities(doc.Entities(), wanted), nil
}

func filterEntities(ents []prose.Entity, wanted map[Category]bool) []Entity {
	var res []Entity

	for _, ent := range ents {
		category, ok := entityCategories[ent.Label]
		if !ok {
			continue
		}

		if !wanted[category] {
			continue
		}

		res = append(res, Entity{Category: category, Text: ent.Text})
	}

	return res
}
