package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chng-cli/chng/config"
	"github.com/chng-cli/chng/llm"
)

// runSetup drives the interactive configuration flow and verifies the
// saved credentials with a minimal completion request.
func runSetup(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	creds, err := config.RunSetup(os.Stdin, out)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	color.New(color.FgBlue).Fprintln(out, "Testing API connection...")

	client := llm.NewOpenAI(creds.APIURL(), creds.APIKey,
		llm.WithModel(creds.Model),
		llm.WithMaxTokens(1),
		llm.WithAPITimeout(15),
	)

	// A failed probe is reported but does not fail setup: the endpoint may
	// simply not be running yet.
	if resp := client.Prompt(llm.Request{UserPrompt: "test"}); resp.Error != nil {
		color.New(color.FgRed).Fprintf(out, "✗ Connection failed: %v\n", resp.Error)
		color.New(color.FgRed).Fprintln(out, "Please check your settings.")
	} else {
		color.New(color.FgGreen).Fprintln(out, "✓ Connection successful!")
	}

	return nil
}
