package usecase

import (
	"errors"
	"testing"
)

func TestScoreIdenticalVectors(t *testing.T) {
	v := []float32{0.1, 0.2, 0.3, 0.4}

	score, err := Score(v, v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !floatEquals(score, 100.0, 0.001) {
		t.Errorf("expected 100.00 for identical vectors, got %f", score)
	}
}

func TestScoreOrthogonalVectors(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}

	score, err := Score(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !floatEquals(score, 0.0, 0.001) {
		t.Errorf("expected 0.00 for orthogonal vectors, got %f", score)
	}
}

func TestScoreClampsNegative(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{-1, 0}

	score, err := Score(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 0 {
		t.Errorf("expected negative similarity clamped to 0, got %f", score)
	}
}

func TestScoreRounding(t *testing.T) {
	// cos = 1/3 exactly -> 33.333...% -> 33.33 after rounding.
	a := []float32{1, 0, 0}
	b := []float32{1, 2, 2}

	score, err := Score(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 33.33 {
		t.Errorf("expected 33.33, got %f", score)
	}
}

func TestScoreZeroVector(t *testing.T) {
	a := []float32{0, 0, 0}
	b := []float32{1, 2, 3}

	if _, err := Score(a, b); !errors.Is(err, ErrZeroVector) {
		t.Errorf("expected ErrZeroVector, got %v", err)
	}
	if _, err := Score(b, a); !errors.Is(err, ErrZeroVector) {
		t.Errorf("expected ErrZeroVector for second operand, got %v", err)
	}
	if _, err := Score(nil, nil); !errors.Is(err, ErrZeroVector) {
		t.Errorf("expected ErrZeroVector for empty vectors, got %v", err)
	}
}

func TestScoreDimensionMismatch(t *testing.T) {
	a := []float32{1, 2}
	b := []float32{1, 2, 3}

	if _, err := Score(a, b); err == nil {
		t.Error("expected error for mismatched dimensions")
	}
}

func floatEquals(a, b, tolerance float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < tolerance
}
