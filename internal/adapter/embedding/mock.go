package embedding

import "context"

// MockEmbedder returns deterministic vectors derived from the input bytes.
// It exists so the pipeline can be exercised without a model behind it.
type MockEmbedder struct {
	dimension int
}

func NewMockEmbedder(dimension int) *MockEmbedder {
	if dimension <= 0 {
		dimension = 384
	}
	return &MockEmbedder{dimension: dimension}
}

func (e *MockEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		vec := make([]float32, e.dimension)
		for j, r := range text {
			vec[j%e.dimension] += float32(r) / 1000.0
		}
		if text == "" {
			// The zero vector has no defined cosine similarity.
			vec[0] = 1
		}
		embeddings[i] = vec
	}
	return embeddings, nil
}

func (e *MockEmbedder) Dimension() int {
	return e.dimension
}

func (e *MockEmbedder) ModelName() string {
	return "mock"
}
