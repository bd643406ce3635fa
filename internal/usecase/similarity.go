package usecase

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroVector is returned when an embedding has zero magnitude; cosine
// similarity is undefined for the zero vector.
var ErrZeroVector = errors.New("cosine similarity undefined for zero-magnitude vector")

// Score converts the cosine similarity of two embeddings into a match
// percentage: scaled by 100, rounded to two decimals and clamped to [0, 100].
// Natural-language embeddings land in [0, 1] similarity in practice, but the
// clamp guards the contract rather than trusting the model.
func Score(a, b []float32) (float64, error) {
	sim, err := cosineSimilarity(a, b)
	if err != nil {
		return 0, err
	}

	pct := math.Round(sim*100*100) / 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct, nil
}

// cosineSimilarity calculates the cosine similarity between two vectors.
func cosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector dimension mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, ErrZeroVector
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, ErrZeroVector
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
