package analyzer

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases",
			input:    "Senior Golang Engineer",
			expected: "senior golang engineer",
		},
		{
			name:     "strips punctuation",
			input:    "C++, SQL & REST-APIs!",
			expected: "c sql rest apis",
		},
		{
			name:     "drops stopwords",
			input:    "experience with the cloud and a strong team",
			expected: "experience cloud strong team",
		},
		{
			name:     "collapses whitespace",
			input:    "python\t\tdeveloper\n\n  backend",
			expected: "python developer backend",
		},
		{
			name:     "keeps digits",
			input:    "5 years of Kubernetes",
			expected: "5 years kubernetes",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "only stopwords",
			input:    "the and of a an",
			expected: "",
		},
		{
			name:     "job description sample",
			input:    "Python developer needed",
			expected: "python developer",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := n.Clean(tc.input)
			if got != tc.expected {
				t.Errorf("Clean(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	n := NewNormalizer()

	inputs := []string{
		"Experienced Python Developer!",
		"Data Engineer (Remote) — AWS, Spark, Airflow",
		"already clean text",
		"",
	}

	for _, input := range inputs {
		once := n.Clean(input)
		twice := n.Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestCleanOutputAlphabet(t *testing.T) {
	n := NewNormalizer()

	got := n.Clean("Résumé: C#/.NET dev, 10+ yrs @BigCo (2014–2024)!")

	for _, r := range got {
		valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' '
		if !valid {
			t.Fatalf("Clean output contains invalid rune %q in %q", r, got)
		}
	}
	if strings.Contains(got, "  ") {
		t.Errorf("Clean output contains a double space: %q", got)
	}
	if strings.HasPrefix(got, " ") || strings.HasSuffix(got, " ") {
		t.Errorf("Clean output not trimmed: %q", got)
	}
}

func TestCleanNoStandaloneStopwords(t *testing.T) {
	n := NewNormalizer()

	got := n.Clean("The engineer will work with the team on all of our services")
	for _, tok := range strings.Fields(got) {
		if _, stop := defaultStopwords()[tok]; stop {
			t.Errorf("stopword %q survived cleaning: %q", tok, got)
		}
	}
}

func TestUniqueWords(t *testing.T) {
	words := UniqueWords("go go python go sql")
	if len(words) != 3 {
		t.Fatalf("expected 3 unique words, got %d", len(words))
	}
	for _, w := range []string{"go", "python", "sql"} {
		if _, ok := words[w]; !ok {
			t.Errorf("expected %q in unique word set", w)
		}
	}
}
