package cmd

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chng-cli/chng/changelog"
	"github.com/chng-cli/chng/common"
	"github.com/chng-cli/chng/config"
	"github.com/chng-cli/chng/llm"
)

// runGenerate loads the stored credentials and produces a changelog entry
// for the diff file at path.
func runGenerate(cmd *cobra.Command, path string) error {
	creds, err := config.Load()
	if err != nil {
		return err
	}
	if err := creds.Validate(); err != nil {
		return err
	}

	client := llm.NewOpenAI(creds.APIURL(), creds.APIKey, llm.WithModel(creds.Model))
	generator := changelog.NewGenerator(client, common.WithYamlFile())

	stop := startSpinner("Generating changelog...")
	outputPath, err := generator.Generate(path)
	stop()
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Changelog written to %s\n", outputPath)
	return nil
}

// startSpinner shows a progress spinner on stderr while the request is in
// flight. It is a no-op when stderr is not a terminal.
func startSpinner(message string) func() {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	s.Start()
	return s.Stop
}
