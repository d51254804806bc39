package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var caseCmd = &cobra.Command{
	Use:   "case",
	Short: "Inspect and manage the case record",
}

var caseShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the case record, timeline, and any pending extraction",
	RunE:  runCaseShow,
}

var caseConfirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Confirm the pending extraction into the case record",
	RunE:  runCaseConfirm,
}

var caseRejectCmd = &cobra.Command{
	Use:   "reject",
	Short: "Discard the pending extraction",
	RunE:  runCaseReject,
}

var caseClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the case record and its timeline",
	RunE:  runCaseClear,
}

func init() {
	caseCmd.AddCommand(caseShowCmd)
	caseCmd.AddCommand(caseConfirmCmd)
	caseCmd.AddCommand(caseRejectCmd)
	caseCmd.AddCommand(caseClearCmd)
}

func runCaseShow(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	view, err := api.GetCase(cmd.Context())
	if err != nil {
		return err
	}

	if view.CaseInfo == nil {
		fmt.Println("No case record yet.")
	} else {
		info := view.CaseInfo
		fmt.Printf("Case type: %s\n", info.CaseType)
		fmt.Printf("Summary:   %s\n", info.Summary)
		if info.CourtInfo.CourtName != "" {
			fmt.Printf("Court:     %s", info.CourtInfo.CourtName)
			if info.CourtInfo.County != "" {
				fmt.Printf(" (%s County)", info.CourtInfo.County)
			}
			fmt.Println()
		}
		if info.CourtInfo.CaseNumber != "" {
			fmt.Printf("Case no:   %s\n", info.CourtInfo.CaseNumber)
		}
		for _, d := range info.KeyDates {
			marker := " "
			if d.IsDeadline {
				marker = "!"
			}
			fmt.Printf("  %s %s: %s\n", marker, d.Label, d.Date)
		}
	}

	if view.Pending != nil {
		fmt.Printf("\nPending extraction awaiting confirmation (%s, confidence %.2f).\n",
			view.Pending.CaseType, view.Pending.Confidence)
	}

	if len(view.Timeline) > 0 {
		fmt.Println("\nTimeline:")
		for _, event := range view.Timeline {
			fmt.Printf("  %s  [%s] %s\n", event.CreatedAt.Format("2006-01-02 15:04"), event.EventType, event.Title)
		}
	}
	return nil
}

func runCaseConfirm(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	result, err := api.ConfirmCase(cmd.Context())
	if err != nil {
		return err
	}

	if result.Created {
		fmt.Println("Case record created.")
		return nil
	}
	if len(result.Changes) == 0 {
		fmt.Println("No changes: the record already contained this information.")
		return nil
	}
	fmt.Printf("Updated %d field(s):\n", len(result.Changes))
	for _, change := range result.Changes {
		fmt.Printf("  %s: %s\n", change.Field, change.New)
	}
	return nil
}

func runCaseReject(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}
	if err := api.RejectCase(cmd.Context()); err != nil {
		return err
	}
	fmt.Println("Pending extraction discarded.")
	return nil
}

func runCaseClear(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}
	deleted, err := api.ClearCase(cmd.Context())
	if err != nil {
		return err
	}
	if deleted {
		fmt.Println("Case record deleted.")
	} else {
		fmt.Println("Nothing to delete.")
	}
	return nil
}
