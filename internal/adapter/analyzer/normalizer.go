package analyzer

import "strings"

// Normalizer reduces free text to the cleaned form used for embedding and
// keyword comparison: lowercase, ASCII alphanumerics only, stopwords removed,
// surviving tokens rejoined with single spaces in their original order.
type Normalizer struct {
	stopwords map[string]struct{}
}

// NewNormalizer creates a Normalizer with the default English stopword set.
func NewNormalizer() *Normalizer {
	return &Normalizer{stopwords: defaultStopwords()}
}

// Clean normalizes text. The transform is deterministic and idempotent:
// Clean(Clean(s)) == Clean(s).
func (n *Normalizer) Clean(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		default:
			b.WriteByte(' ')
		}
	}

	tokens := strings.Fields(b.String())
	kept := tokens[:0]
	for _, tok := range tokens {
		if _, stop := n.stopwords[tok]; stop {
			continue
		}
		kept = append(kept, tok)
	}

	return strings.Join(kept, " ")
}

// UniqueWords returns the set of distinct tokens in a cleaned string.
func UniqueWords(cleaned string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(cleaned) {
		words[w] = struct{}{}
	}
	return words
}

// defaultStopwords returns a set of common English stopwords.
func defaultStopwords() map[string]struct{} {
	stops := []string{
		"a", "an", "and", "are", "as", "at", "be", "by", "for",
		"from", "has", "he", "in", "is", "it", "its", "of", "on",
		"that", "the", "to", "was", "were", "will", "with", "this",
		"have", "had", "but", "not", "you", "your", "we", "our",
		"they", "their", "she", "her", "his", "if", "or", "so",
		"no", "can", "do", "does", "did", "been", "being", "would",
		"could", "should", "may", "might", "must", "shall", "which",
		"who", "whom", "what", "when", "where", "why", "how", "all",
		"each", "every", "both", "few", "more", "most", "other",
		"some", "such", "than", "too", "very", "just", "also", "i",
		"me", "my", "am", "us", "him", "them", "these", "those",
		"there", "here", "about", "into", "over", "under", "again",
		"then", "once", "because", "while", "during", "before",
		"after", "up", "down", "out", "off", "own", "same", "any",
		"need", "needed", "needs",
	}
	m := make(map[string]struct{}, len(stops))
	for _, s := range stops {
		m[s] = struct{}{}
	}
	return m
}
