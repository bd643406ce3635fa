package port

import "resumematch/internal/domain"

// Extractor pulls plain text out of a resume document.
type Extractor interface {
	// Extract returns the visible text of the document. A page or run that
	// yields no text contributes nothing; an unsupported kind is an error.
	Extract(doc domain.Document) (string, error)
}
