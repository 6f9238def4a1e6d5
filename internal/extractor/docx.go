package extractor

import (
	"bytes"
	"strings"

	"github.com/fumiama/go-docx"

	"jobsearch-agent/pkg/utils"
)

// extractDocx concatenates paragraph text in document order with newline
// separators
func extractDocx(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", utils.NewExtractionError(err)
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		if para, ok := item.(*docx.Paragraph); ok {
			sb.WriteString(para.String())
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}
