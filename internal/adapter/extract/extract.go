package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"resumematch/internal/domain"
)

// UnsupportedFormatError reports a document kind the extractor cannot handle.
// It is a distinct type so callers can tell "format not supported" apart from
// "supported format with no content".
type UnsupportedFormatError struct {
	Kind domain.Kind
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %q", string(e.Kind))
}

// DetectKind infers the document kind from a file name.
func DetectKind(name string) domain.Kind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return domain.KindPDF
	case ".docx":
		return domain.KindDOCX
	case ".txt":
		return domain.KindText
	default:
		return domain.KindUnknown
	}
}

// DocumentExtractor implements port.Extractor for PDF, DOCX and plain text.
type DocumentExtractor struct{}

func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

func (x *DocumentExtractor) Extract(doc domain.Document) (string, error) {
	switch doc.Kind {
	case domain.KindPDF:
		return extractPDF(doc.Data)
	case domain.KindDOCX:
		return extractDocx(doc.Data)
	case domain.KindText:
		return string(doc.Data), nil
	default:
		return "", &UnsupportedFormatError{Kind: doc.Kind}
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		// A page with no extractable text (image-only scans, mostly)
		// contributes nothing; it never fails the whole document.
		text, err := page.GetPlainText(nil)
		if err != nil || text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(text)
	}

	return b.String(), nil
}

var xmlTag = regexp.MustCompile(`<[^>]+>`)

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	// GetContent returns the document body as WordprocessingML; drop the
	// markup so only visible text remains.
	content := doc.Editable().GetContent()
	return strings.TrimSpace(xmlTag.ReplaceAllString(content, " ")), nil
}
