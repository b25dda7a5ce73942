package engine

import (
	"sort"

	"github.com/n0madic/go-glove"
	log "github.com/sirupsen/logrus"
)

// VectorStore lazily loads one GloVe vector space per language. Languages
// without a configured vector file have no space and yield empty lookups.
type VectorStore struct {
	paths  map[string]string
	models map[string]*glove.GloVe
}

func NewVectorStore(paths map[string]string) *VectorStore {
	return &VectorStore{
		paths:  paths,
		models: make(map[string]*glove.GloVe),
	}
}

// Neighbors returns up to limit words nearest to word in the vector space
// for lang, most similar first. Distance is cosine distance.
func (s *VectorStore) Neighbors(word, lang string, limit int) []Alternative {
	if limit <= 0 {
		return nil
	}

	model := s.model(lang)
	if model == nil {
		return nil
	}

	vec, ok := model.GetWordVector(word)
	if !ok {
		return nil
	}

	type wordSim struct {
		word string
		sim  float64
	}

	var sims []wordSim

	for other := range model.Vocab {
		if other == word {
			continue
		}

		otherVec, exists := model.GetWordVector(other)
		if !exists {
			continue
		}

		sims = append(sims, wordSim{other, glove.CosineSimilarity(vec, otherVec)})
	}

	sort.Slice(sims, func(i, j int) bool {
		return sims[i].sim > sims[j].sim
	})

	if len(sims) > limit {
		sims = sims[:limit]
	}

	res := make([]Alternative, 0, len(sims))
	for _, sim := range sims {
		res = append(res, Alternative{Word: sim.word, Distance: 1 - sim.sim})
	}

	return res
}

func (s *VectorStore) model(lang string) *glove.GloVe {
	if model, ok := s.models[lang]; ok {
		return model
	}

	path, ok := s.paths[lang]
	if !ok {
		s.models[lang] = nil
		return nil
	}

	model := &glove.GloVe{}
	if err := model.LoadVectors(path); err != nil {
		log.Warnf("error loading %q vectors from %s: %v", lang, path, err)
		model = nil
	}

	s.models[lang] = model

	return model
}
