package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	app_errors "lexaid/backend/internal/errors"
	"lexaid/backend/internal/llm"
	"lexaid/backend/internal/model"
	"lexaid/backend/internal/pdf"
	"lexaid/backend/internal/repository"
)

const extractionSystemPrompt = `You are a legal document analyzer. Extract structured information from the provided legal document text.

Return a JSON object with the following structure:
{
    "case_type": "string - The type of legal matter (e.g., 'Eviction', 'Small Claims', 'Divorce', 'Child Custody', 'Debt Collection')",
    "court_info": {
        "county": "string - The county name if mentioned",
        "court_name": "string - The full court name if mentioned",
        "case_number": "string or null - The case/cause number if present",
        "address": "string or null - Full street address of the courthouse",
        "phone": "string or null - Court phone number",
        "email": "string or null - Court email or clerk email"
    },
    "parties": {
        "user_name": "string or null - The name of the person who likely received this document (defendant in eviction, respondent, etc.)",
        "user_address": "string or null - User's address if shown",
        "opposing_party": "string or null - The other party (plaintiff, petitioner, landlord, etc.)",
        "opposing_address": "string or null - Opposing party's address",
        "opposing_phone": "string or null - Opposing party's phone number",
        "opposing_email": "string or null - Opposing party's email",
        "attorney_name": "string or null - Attorney name if represented",
        "attorney_phone": "string or null - Attorney phone",
        "attorney_email": "string or null - Attorney email"
    },
    "key_dates": [
        {
            "label": "string - Description of what the date is for",
            "date": "string - The date in YYYY-MM-DD format if possible, otherwise as written",
            "is_deadline": "boolean - True if this is a deadline the user needs to act on"
        }
    ],
    "summary": "string - A concise, actionable summary with SPECIFIC details: what action is required, exact deadline dates, court address if shown, and consequences of not acting. Include actual dates, addresses, amounts - not vague descriptions.",
    "confidence": "number between 0 and 1 - How confident you are in the extraction accuracy"
}

Guidelines:
- If information is not found, use null for optional fields
- For dates, try to parse them into YYYY-MM-DD format when possible
- Focus on deadlines that require action from the document recipient
- The summary should be helpful and reassuring, not alarming
- Be conservative with confidence scores - lower if text is unclear or partially extracted`

// ExtractionService turns an uploaded PDF into an extraction candidate. A
// successful upload with failed analysis is still a successful upload.
type ExtractionService struct {
	repo    repository.Repository
	factory *llm.Factory
	cases   *CaseService
}

func NewExtractionService(repo repository.Repository, factory *llm.Factory, cases *CaseService) *ExtractionService {
	return &ExtractionService{repo: repo, factory: factory, cases: cases}
}

// UploadResult is the outcome of processing an uploaded document.
// ExtractedData and ExtractionError are mutually exclusive.
type UploadResult struct {
	Filename        string                   `json:"filename"`
	PageCount       int                      `json:"page_count"`
	TextPreview     string                   `json:"text_preview,omitempty"`
	ExtractedData   *model.ExtractedCaseData `json:"extracted_data,omitempty"`
	ExtractionError string                   `json:"extraction_error,omitempty"`
}

// ProcessUpload validates the upload, extracts its text, runs structured
// extraction, and stages the result as the owner's pending candidate. Text
// or analysis failures are reported in ExtractionError; only invalid uploads
// return an error.
func (s *ExtractionService) ProcessUpload(ctx context.Context, ownerToken, filename, contentType string, size int64, r io.ReaderAt) (*UploadResult, error) {
	if err := pdf.ValidateUpload(filename, contentType, size); err != nil {
		return nil, fmt.Errorf("%w: %s", app_errors.ErrValidation, err)
	}

	result := &UploadResult{Filename: filename}

	text := pdf.ExtractText(r, size)
	result.PageCount = text.PageCount
	result.TextPreview = text.TextPreview
	if !text.Success {
		result.ExtractionError = text.Error
		s.recordUpload(ctx, ownerToken, result)
		return result, nil
	}

	data, err := s.extract(ctx, text.Text)
	if err != nil {
		slog.Error("Document analysis failed", "filename", filename, "error", err)
		result.ExtractionError = "Failed to analyze document. Please try again."
		s.recordUpload(ctx, ownerToken, result)
		return result, nil
	}
	result.ExtractedData = data

	candidate := &model.PendingExtraction{
		ID:         uuid.NewString(),
		OwnerToken: ownerToken,
		Data:       *data,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.SavePendingExtraction(ctx, candidate); err != nil {
		return nil, fmt.Errorf("%w: could not stage extraction: %s", app_errors.ErrInternal, err)
	}

	s.recordUpload(ctx, ownerToken, result)
	return result, nil
}

// extract asks the provider for structured case data from the document text.
func (s *ExtractionService) extract(ctx context.Context, documentText string) (*model.ExtractedCaseData, error) {
	if strings.TrimSpace(documentText) == "" {
		return nil, fmt.Errorf("no document text provided")
	}

	provider, err := s.factory.Provider()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", app_errors.ErrUnavailable, err)
	}

	req := &llm.GenerateRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: extractionSystemPrompt},
			{Role: llm.RoleUser, Content: "Please analyze this legal document and extract the relevant information:\n\n" + documentText},
		},
		MaxTokens: 2048,
		JSONMode:  true,
	}

	var data model.ExtractedCaseData
	if err := provider.GenerateJSON(ctx, req, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// recordUpload appends an upload event to the timeline. Failures are logged
// only; the upload result already belongs to the user.
func (s *ExtractionService) recordUpload(ctx context.Context, ownerToken string, result *UploadResult) {
	content := fmt.Sprintf("%d page(s)", result.PageCount)
	if result.ExtractionError != "" {
		content = result.ExtractionError
	} else if result.ExtractedData != nil && result.ExtractedData.Summary != "" {
		content = result.ExtractedData.Summary
	}

	metadata, err := json.Marshal(map[string]any{
		"filename":   result.Filename,
		"page_count": result.PageCount,
	})
	if err != nil {
		metadata = nil
	}

	if _, err := s.cases.AddTimelineEvent(ctx, ownerToken, model.TimelineUpload, fmt.Sprintf("Uploaded %s", result.Filename), content, metadata); err != nil {
		slog.Warn("Failed to record upload on timeline", "filename", result.Filename, "error", err)
	}
}
