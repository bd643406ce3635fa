package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"resumematch/internal/port"
)

var bucketEmbeddings = []byte("embeddings")

// BoltCache wraps an Embedder and memoizes its vectors in BoltDB, keyed by a
// hash of model name and input text. Vectors are only comparable within one
// model, so the model name is part of the key.
type BoltCache struct {
	inner port.Embedder
	db    *bbolt.DB
}

type cachedVector struct {
	Vector []float32 `json:"v"`
}

// NewBoltCache opens (or creates) the cache database at path.
func NewBoltCache(path string, inner port.Embedder) (*BoltCache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketEmbeddings)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create embeddings bucket: %w", err)
	}

	return &BoltCache{inner: inner, db: db}, nil
}

func (c *BoltCache) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	embeddings := make([][]float32, len(texts))
	var missing []string
	var missingIdx []int

	err := c.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketEmbeddings)
		for i, text := range texts {
			data := b.Get(c.key(text))
			if data == nil {
				missing = append(missing, text)
				missingIdx = append(missingIdx, i)
				continue
			}
			var stored cachedVector
			if err := json.Unmarshal(data, &stored); err != nil {
				// Corrupted entry, recompute it.
				missing = append(missing, text)
				missingIdx = append(missingIdx, i)
				continue
			}
			embeddings[i] = stored.Vector
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cache lookup failed: %w", err)
	}

	if len(missing) == 0 {
		return embeddings, nil
	}

	computed, err := c.inner.Embed(ctx, missing)
	if err != nil {
		return nil, err
	}
	if len(computed) != len(missing) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d texts", len(computed), len(missing))
	}

	err = c.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketEmbeddings)
		for i, vec := range computed {
			data, err := json.Marshal(cachedVector{Vector: vec})
			if err != nil {
				return err
			}
			if err := b.Put(c.key(missing[i]), data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cache store failed: %w", err)
	}

	for i, vec := range computed {
		embeddings[missingIdx[i]] = vec
	}

	return embeddings, nil
}

func (c *BoltCache) Dimension() int {
	return c.inner.Dimension()
}

func (c *BoltCache) ModelName() string {
	return c.inner.ModelName()
}

// Count returns the number of cached vectors.
func (c *BoltCache) Count() (int, error) {
	var count int
	err := c.db.View(func(tx *bbolt.Tx) error {
		count = tx.Bucket(bucketEmbeddings).Stats().KeyN
		return nil
	})
	return count, err
}

// Close closes the cache database.
func (c *BoltCache) Close() error {
	return c.db.Close()
}

func (c *BoltCache) key(text string) []byte {
	h := sha256.New()
	h.Write([]byte(c.inner.ModelName()))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return h.Sum(nil)
}
