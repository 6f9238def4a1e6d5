package extractor

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"

	"jobsearch-agent/pkg/utils"
)

// extractPDF decodes each page in document order and concatenates the
// extracted text with newline separators. A page whose text extraction
// fails contributes an empty string; per-page failure is non-fatal.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", utils.NewExtractionError(err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			text = ""
		}

		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
