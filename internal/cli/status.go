package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backend chat availability",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	enabled, available, err := api.Status(cmd.Context())
	if err != nil {
		return fmt.Errorf("could not reach backend: %w", err)
	}

	fmt.Printf("Server:    %s\n", serverURL)
	fmt.Printf("Chat:      %s\n", onOff(enabled))
	fmt.Printf("Provider:  %s\n", upDown(available))
	return nil
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

func upDown(b bool) string {
	if b {
		return "available"
	}
	return "unavailable"
}
