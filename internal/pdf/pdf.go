// Package pdf extracts plain text from uploaded PDF documents.
package pdf

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	MaxFileSizeMB     = 10
	MaxFileSizeBytes  = MaxFileSizeMB * 1024 * 1024
	textPreviewLength = 500
)

// ExtractionResult is the outcome of text extraction. A failed extraction is
// a soft error: Error is human-readable and safe to show.
type ExtractionResult struct {
	Success     bool   `json:"success"`
	PageCount   int    `json:"page_count"`
	Text        string `json:"-"`
	TextPreview string `json:"text_preview,omitempty"`
	Error       string `json:"error,omitempty"`
}

// ValidateUpload checks an upload's name, declared content type and size
// before any parsing happens.
func ValidateUpload(filename, contentType string, size int64) error {
	if contentType != "application/pdf" {
		return fmt.Errorf("only PDF files are allowed")
	}
	if size > MaxFileSizeBytes {
		return fmt.Errorf("file size exceeds %dMB limit", MaxFileSizeMB)
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return fmt.Errorf("file must have .pdf extension")
	}
	return nil
}

// ExtractText reads every page of the document and returns the joined text
// plus a short preview. Scanned/image-only documents yield a soft error.
func ExtractText(r io.ReaderAt, size int64) (result ExtractionResult) {
	// The parser panics on some malformed documents; treat that as a
	// normal extraction failure.
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("PDF parser panicked", "panic", rec)
			result = ExtractionResult{
				Success: false,
				Error:   "Failed to process PDF file. Please try again.",
			}
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		slog.Error("Failed to open PDF", "error", err)
		return ExtractionResult{
			Success: false,
			Error:   "Failed to process PDF file. Please try again.",
		}
	}

	pageCount := reader.NumPage()
	if pageCount == 0 {
		return ExtractionResult{
			Success: false,
			Error:   "PDF contains no pages",
		}
	}

	var parts []string
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			slog.Warn("Failed to extract text from page", "page", i, "error", err)
			continue
		}
		if strings.TrimSpace(text) != "" {
			parts = append(parts, text)
		}
	}

	fullText := strings.Join(parts, "\n\n")
	if strings.TrimSpace(fullText) == "" {
		return ExtractionResult{
			Success:   false,
			PageCount: pageCount,
			Error:     "Could not extract text from PDF. The document may be scanned or image-based.",
		}
	}

	preview := fullText
	if len(preview) > textPreviewLength {
		preview = preview[:textPreviewLength] + "..."
	}

	return ExtractionResult{
		Success:     true,
		PageCount:   pageCount,
		Text:        fullText,
		TextPreview: preview,
	}
}
