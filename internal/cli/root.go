// Package cli implements the lexctl command line client.
package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"lexaid/backend/internal/client"
)

var (
	serverURL string
	token     string
	agentName string
)

var rootCmd = &cobra.Command{
	Use:   "lexctl",
	Short: "Command line client for the LexAid backend",
	Long: `lexctl talks to a running LexAid backend: stream chat turns,
upload legal documents, and manage the case record.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8000", "backend base URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "client token (generated and stored on first use when empty)")
	rootCmd.PersistentFlags().StringVar(&agentName, "agent", "", "agent persona for chat turns")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(caseCmd)
	rootCmd.AddCommand(statusCmd)
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// newAPI builds the API client, minting and persisting an anonymous token on
// first use so all invocations share one identity.
func newAPI() (*client.API, error) {
	if token == "" {
		saved, err := loadOrMintToken()
		if err != nil {
			return nil, err
		}
		token = saved
	}
	return client.NewAPI(serverURL, token), nil
}

func loadOrMintToken() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not locate config dir: %w", err)
	}
	path := dir + "/lexctl/token"

	if data, err := os.ReadFile(path); err == nil && len(data) > 0 {
		return string(data), nil
	}

	minted := uuid.NewString()
	if err := os.MkdirAll(dir+"/lexctl", 0700); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(minted), 0600); err != nil {
		return "", err
	}
	return minted, nil
}
