package engine

// Sentiment returns the paragraph-level polarity of text in [-1, 1].
func (e *Engine) Sentiment(text string) float64 {
	return compound(e.sentiment.PolarityScores(text))
}

// compound pulls the aggregate polarity out of a VADER score map. A map
// without a compound entry scores 0.0, not an error.
func compound(scores map[string]float64) float64 {
	score, ok := scores["compound"]
	if !ok {
		return 0
	}

	return score
}
