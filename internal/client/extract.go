package client

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PageExtractor turns a PDF binary into one text string per page.
type PageExtractor interface {
	ExtractPages(data []byte) ([]string, error)
}

// PDFPageExtractor implements PageExtractor with the pdf library. The result
// always has exactly one entry per page, in page order; a page without text
// runs yields an empty string.
type PDFPageExtractor struct{}

// NewPageExtractor creates a new PDF page extractor
func NewPageExtractor() PageExtractor {
	return &PDFPageExtractor{}
}

// ExtractPages extracts the plain text of every page in document order.
func (e *PDFPageExtractor) ExtractPages(data []byte) ([]string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Keep the one-entry-per-page invariant for pages that cannot
			// be decoded.
			pages = append(pages, "")
			continue
		}
		pages = append(pages, strings.TrimSpace(text))
	}

	return pages, nil
}
