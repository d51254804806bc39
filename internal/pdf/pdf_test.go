package pdf_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"lexaid/backend/internal/pdf"
)

func TestValidateUpload(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		assert.NoError(t, pdf.ValidateUpload("notice.pdf", "application/pdf", 1024))
	})

	t.Run("Extension is case insensitive", func(t *testing.T) {
		assert.NoError(t, pdf.ValidateUpload("NOTICE.PDF", "application/pdf", 1024))
	})

	t.Run("Failure - wrong content type", func(t *testing.T) {
		err := pdf.ValidateUpload("notice.pdf", "text/plain", 1024)
		assert.ErrorContains(t, err, "only PDF files")
	})

	t.Run("Failure - wrong extension", func(t *testing.T) {
		err := pdf.ValidateUpload("notice.docx", "application/pdf", 1024)
		assert.ErrorContains(t, err, ".pdf extension")
	})

	t.Run("Failure - oversized file", func(t *testing.T) {
		err := pdf.ValidateUpload("notice.pdf", "application/pdf", pdf.MaxFileSizeBytes+1)
		assert.ErrorContains(t, err, "exceeds")
	})
}

func TestExtractText_UnparseableDocumentIsSoftFailure(t *testing.T) {
	garbage := []byte("this is not a pdf at all")
	result := pdf.ExtractText(bytes.NewReader(garbage), int64(len(garbage)))

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Empty(t, result.Text)
}

func TestExtractText_TruncatedHeaderIsSoftFailure(t *testing.T) {
	// A document that starts like a PDF but ends mid-structure must not
	// escape as a panic.
	truncated := []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog")
	result := pdf.ExtractText(bytes.NewReader(truncated), int64(len(truncated)))

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}
