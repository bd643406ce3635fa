package usecase

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"testing"
)

func TestMissingKeywords(t *testing.T) {
	tests := []struct {
		name     string
		resume   string
		jd       string
		limit    int
		expected []string
	}{
		{
			name:     "resume superset of jd",
			resume:   "python developer cloud kubernetes",
			jd:       "python developer",
			limit:    10,
			expected: nil,
		},
		{
			name:     "missing sorted lexicographically",
			resume:   "python developer",
			jd:       "python developer terraform aws kubernetes",
			limit:    10,
			expected: []string{"aws", "kubernetes", "terraform"},
		},
		{
			name:     "duplicates collapse",
			resume:   "python",
			jd:       "go go go python",
			limit:    10,
			expected: []string{"go"},
		},
		{
			name:     "empty jd",
			resume:   "python developer",
			jd:       "",
			limit:    10,
			expected: nil,
		},
		{
			name:     "empty resume",
			resume:   "",
			jd:       "docker helm",
			limit:    10,
			expected: []string{"docker", "helm"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MissingKeywords(tc.resume, tc.jd, tc.limit)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("MissingKeywords() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestMissingKeywordsLimit(t *testing.T) {
	var words []string
	for i := 0; i < 25; i++ {
		words = append(words, fmt.Sprintf("skill%02d", i))
	}
	jd := strings.Join(words, " ")

	got := MissingKeywords("unrelated resume", jd, 10)
	if len(got) != 10 {
		t.Fatalf("expected 10 keywords, got %d", len(got))
	}

	// The first 10 in sorted order, deterministically.
	sort.Strings(words)
	if !reflect.DeepEqual(got, words[:10]) {
		t.Errorf("expected %v, got %v", words[:10], got)
	}
}
