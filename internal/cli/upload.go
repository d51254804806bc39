package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file.pdf>",
	Short: "Upload a legal document for analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpload,
}

func runUpload(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	result, err := api.Upload(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	fmt.Printf("Uploaded %s (%d pages)\n", result.Filename, result.PageCount)
	if result.ExtractionError != "" {
		fmt.Printf("Analysis failed: %s\n", result.ExtractionError)
		return nil
	}

	data := result.ExtractedData
	fmt.Printf("Case type:  %s\n", data.CaseType)
	fmt.Printf("Summary:    %s\n", data.Summary)
	fmt.Printf("Confidence: %.2f\n", data.Confidence)
	for _, d := range data.KeyDates {
		marker := " "
		if d.IsDeadline {
			marker = "!"
		}
		fmt.Printf("  %s %s: %s\n", marker, d.Label, d.Date)
	}
	fmt.Println("\nReview with 'lexctl case show', then 'lexctl case confirm' or 'lexctl case reject'.")
	return nil
}
