package usecase

import (
	"sort"
	"strings"

	"resumematch/internal/adapter/analyzer"
)

// MissingKeywords returns up to limit words that appear in the cleaned job
// description but not in the cleaned resume. Duplicates collapse, and the
// result is sorted lexicographically before truncation so the same inputs
// always select the same keywords.
func MissingKeywords(cleanResume, cleanJD string, limit int) []string {
	resumeWords := analyzer.UniqueWords(cleanResume)

	seen := make(map[string]struct{})
	var missing []string
	for _, w := range strings.Fields(cleanJD) {
		if _, inResume := resumeWords[w]; inResume {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		missing = append(missing, w)
	}

	sort.Strings(missing)
	if limit > 0 && len(missing) > limit {
		missing = missing[:limit]
	}
	return missing
}
