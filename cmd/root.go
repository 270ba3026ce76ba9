package cmd

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chng-cli/chng/changelog"
	"github.com/chng-cli/chng/config"
	"github.com/chng-cli/chng/llm"
	"github.com/chng-cli/chng/logger"
)

// Exit codes, one per failure category.
const (
	ExitSuccess       = 0
	ExitUsage         = 1
	ExitConfigMissing = 2
	ExitFileNotFound  = 3
	ExitAuthError     = 4
	ExitAPIError      = 5
	ExitNetworkError  = 6
	ExitMalformed     = 7
)

var (
	// Command line flags
	logLevel  string
	setupMode bool
)

var rootCmd = &cobra.Command{
	Use:   "chng [diff-file]",
	Short: "AI-powered changelog generator",
	Long: `chng reads a diff file, sends it to an OpenAI-compatible chat completion
endpoint and writes the generated changelog entry to changelog-<name>.md.

Run 'chng --setup' once to configure the API endpoint, key and model.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logLevel)
		logger.Debugf("Log level set to: %s", logLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if setupMode {
			return runSetup(cmd)
		}
		if len(args) == 0 {
			cmd.Help()
			return errUsage
		}
		return runGenerate(cmd, args[0])
	},
}

var errUsage = errors.New("usage: chng <diff-file> or chng --setup")

// Execute runs the root command and returns the process exit code.
func Execute() int {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// exitCodeFor maps an error to its failure category's exit code.
func exitCodeFor(err error) int {
	var notFound *changelog.NotFoundError
	var authErr *llm.AuthError
	var apiErr *llm.APIError
	var netErr *llm.NetworkError

	switch {
	case errors.Is(err, config.ErrMissing), errors.Is(err, config.ErrIncomplete):
		return ExitConfigMissing
	case errors.As(err, &notFound):
		return ExitFileNotFound
	case errors.As(err, &authErr):
		return ExitAuthError
	case errors.As(err, &netErr):
		return ExitNetworkError
	case errors.As(err, &apiErr):
		return ExitAPIError
	case errors.Is(err, llm.ErrMalformedResponse):
		return ExitMalformed
	}
	return ExitUsage
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"Set the logging level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&setupMode, "setup", false,
		"Configure the API endpoint, key and model interactively")
}
