package engine

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeVectors(t *testing.T) string {
	t.Helper()

	content := "king 1.0 0.0\nqueen 0.9 0.1\napple 0.0 1.0\n"

	tempFile, err := os.CreateTemp("", "vectors-*.txt")
	assert.NoError(t, err)
	t.Cleanup(func() { os.Remove(tempFile.Name()) })

	_, err = tempFile.Write([]byte(content))
	assert.NoError(t, err)
	tempFile.Close()

	return tempFile.Name()
}

func TestNeighbors(t *testing.T) {
	store := NewVectorStore(map[string]string{"en": writeVectors(t)})

	t.Run("ranked by similarity", func(t *testing.T) {
		neighbors := store.Neighbors("king", "en", 10)
		assert.Equal(t, 2, len(neighbors))
		assert.Equal(t, "queen", neighbors[0].Word)
		assert.Equal(t, "apple", neighbors[1].Word)
		assert.Equal(t, true, neighbors[0].Distance < neighbors[1].Distance)
	})

	t.Run("limit is honored", func(t *testing.T) {
		neighbors := store.Neighbors("king", "en", 1)
		assert.Equal(t, 1, len(neighbors))
		assert.Equal(t, "queen", neighbors[0].Word)
	})

	t.Run("language without vectors", func(t *testing.T) {
		assert.Equal(t, 0, len(store.Neighbors("king", "de", 10)))
	})

	t.Run("word outside the vocabulary", func(t *testing.T) {
		assert.Equal(t, 0, len(store.Neighbors("zeppelin", "en", 10)))
	})

	t.Run("zero limit", func(t *testing.T) {
		assert.Equal(t, 0, len(store.Neighbors("king", "en", 0)))
	})
}

func TestNeighborsUnreadableVectors(t *testing.T) {
	store := NewVectorStore(map[string]string{"en": "no-such-vectors.txt"})

	// a broken vector file degrades to an empty space, not a failure
	assert.Equal(t, 0, len(store.Neighbors("king", "en", 10)))
	assert.Equal(t, 0, len(store.Neighbors("king", "en", 10)))
}
