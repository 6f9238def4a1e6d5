package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsearch-agent/pkg/utils"
)

func TestExtract_UnsupportedContentType(t *testing.T) {
	_, err := Extract([]byte("plain text"), "text/plain")
	require.Error(t, err)
	assert.Equal(t, utils.KindUnsupportedFileType, utils.KindOf(err))
}

func TestExtract_CorruptPDF(t *testing.T) {
	_, err := Extract([]byte("this is not a pdf"), MimePDF)
	require.Error(t, err)
	assert.Equal(t, utils.KindExtractionError, utils.KindOf(err))
}

func TestExtract_CorruptDocx(t *testing.T) {
	_, err := Extract([]byte("this is not a docx"), MimeDocx)
	require.Error(t, err)
	assert.Equal(t, utils.KindExtractionError, utils.KindOf(err))
}

func TestExtract_LegacyDocTreatedAsDocx(t *testing.T) {
	// .doc goes through the same decoder; an unreadable stream is an
	// extraction error, not an unsupported type
	_, err := Extract([]byte{0xd0, 0xcf, 0x11, 0xe0}, MimeDoc)
	require.Error(t, err)
	assert.Equal(t, utils.KindExtractionError, utils.KindOf(err))
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".pdf", Extension(MimePDF))
	assert.Equal(t, ".docx", Extension(MimeDocx))
	assert.Equal(t, ".docx", Extension(MimeDoc))
	assert.Equal(t, "", Extension("application/octet-stream"))
}
