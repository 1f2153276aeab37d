package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/navstyle/internal/app"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Take the assessment in the terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp resolves configuration and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	return app.Run(app.Options{
		Bank:   e.bank,
		Logger: e.logger,
	})
}
