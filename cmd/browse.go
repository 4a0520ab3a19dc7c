package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/meghashyamc/advocates/client"
	"github.com/meghashyamc/advocates/logger"
	"github.com/meghashyamc/advocates/tui"
	"github.com/spf13/cobra"
)

func newBrowseCmd(opts *rootOptions) *cobra.Command {
	var (
		apiURL  string
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Search advocates interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiURL != "" {
				opts.cfg.Set("API_URL", apiURL)
			}

			// the screen belongs to the terminal UI, so logs go to a file
			file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err != nil {
				return fmt.Errorf("could not open log file: %w", err)
			}
			defer file.Close()
			log := logger.NewWithWriter(file, opts.cfg.GetLogLevel())

			apiClient := client.NewAPIClient(log, opts.cfg.GetAPIURL())
			defer apiClient.Close()

			session := client.NewSession(log, apiClient, opts.cfg.GetDebounceInterval())
			defer session.Close()

			program := tea.NewProgram(tui.New(session), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			session.Start()

			if _, err := program.Run(); err != nil {
				return fmt.Errorf("terminal client failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "", "advocates API base URL (overrides API_URL)")
	cmd.Flags().StringVar(&logFile, "log-file", filepath.Join(os.TempDir(), "advocates-browse.log"), "file the client logs to")

	return cmd
}
