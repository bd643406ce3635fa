package domain

// Kind identifies the container format of a resume document.
type Kind string

const (
	KindPDF     Kind = "pdf"
	KindDOCX    Kind = "docx"
	KindText    Kind = "txt"
	KindUnknown Kind = ""
)

// Document is a resume payload awaiting extraction. It is owned by the caller
// and lives only for the duration of one match call.
type Document struct {
	Name string
	Kind Kind
	Data []byte
}

// MatchResult is the outcome of scoring one resume against a job description.
// ScorePercent is cosine similarity scaled to [0, 100] and rounded to two
// decimals. MissingKeywords holds up to ten job-description words absent from
// the resume, in lexicographic order.
type MatchResult struct {
	Resume          string   `json:"resume"`
	ScorePercent    float64  `json:"score_percent"`
	MissingKeywords []string `json:"missing_keywords"`
	// LowConfidence marks results where little or no text could be extracted,
	// so the score says more about the parser than the candidate.
	LowConfidence bool   `json:"low_confidence,omitempty"`
	Note          string `json:"note,omitempty"`
}
