package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/navstyle/internal/config"
	"github.com/abhisek/navstyle/internal/logging"
	"github.com/abhisek/navstyle/internal/questionbank"
)

var rootCmd = &cobra.Command{
	Use:   "navstyle",
	Short: "Conflict Navigation Style assessment",
	Long: "Navstyle - a terminal assessment of how you navigate conflict, part of the " +
		"Collaboration & Communication Intelligence suite.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Path to a question bank YAML file (overrides NAVSTYLE_BANK env var)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// env is what every command needs from configuration.
type env struct {
	bank   *questionbank.Bank
	logger *slog.Logger
	close  func() error
}

// setup loads configuration, opens the logger and resolves the question
// bank. The caller must call close when done.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	bank, err := resolveBank(cmd, cfg)
	if err != nil {
		closeLog()
		return nil, err
	}
	logger.Debug("question bank ready", "questions", bank.Len())

	return &env{bank: bank, logger: logger, close: closeLog}, nil
}

// resolveBank returns the bank named by --bank (highest priority), then
// NAVSTYLE_BANK, then the embedded default.
func resolveBank(cmd *cobra.Command, cfg config.Config) (*questionbank.Bank, error) {
	path := cfg.BankPath
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		path = p
	}
	if path == "" {
		return questionbank.Default(), nil
	}
	return questionbank.LoadFile(path)
}
