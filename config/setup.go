package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// DefaultModel is offered during setup when no model was configured before.
const DefaultModel = "gpt-3.5-turbo"

// RunSetup walks the user through the API configuration prompts and saves
// the result. Existing values are offered as defaults so re-running setup
// only changes what the user types. Input and output are parameters so the
// flow can be driven from tests.
func RunSetup(in io.Reader, out io.Writer) (Credentials, error) {
	existing, err := Load()
	if err != nil && !errors.Is(err, ErrMissing) {
		// A corrupt file should not block reconfiguration.
		existing = Credentials{}
	}

	color.New(color.FgBlue, color.Bold).Fprintln(out, "API Configuration Setup")
	fmt.Fprintln(out)

	reader := bufio.NewReader(in)

	url, err := promptString(reader, out,
		"API URL (e.g. https://api.openai.com/v1 or http://localhost:11434/v1)", existing.URL)
	if err != nil {
		return Credentials{}, err
	}

	port, err := promptString(reader, out, "Port (leave empty to use port from URL)", existing.Port)
	if err != nil {
		return Credentials{}, err
	}

	key, err := promptSecret(in, reader, out, "API Key", existing.APIKey)
	if err != nil {
		return Credentials{}, err
	}

	defaultModel := existing.Model
	if defaultModel == "" {
		defaultModel = DefaultModel
	}
	model, err := promptString(reader, out, "Model name (e.g. gpt-4, llama2, mistral)", defaultModel)
	if err != nil {
		return Credentials{}, err
	}

	creds := Credentials{
		URL:    url,
		Port:   port,
		APIKey: key,
		Model:  model,
	}

	warnEmptyFields(out, creds)

	if err := creds.Save(); err != nil {
		return Credentials{}, err
	}

	path, _ := Path()
	fmt.Fprintln(out)
	color.New(color.FgGreen).Fprintf(out, "✓ Configuration saved to %s\n", path)
	color.New(color.FgBlue).Fprintf(out, "Using model: %s\n", model)

	return creds, nil
}

func warnEmptyFields(out io.Writer, creds Credentials) {
	var warnings []string
	if creds.URL == "" {
		warnings = append(warnings, "URL is empty")
	}
	if creds.APIKey == "" {
		warnings = append(warnings, "API key is empty")
	}
	if creds.Model == "" {
		warnings = append(warnings, "model is empty")
	}

	if len(warnings) > 0 {
		yellow := color.New(color.FgYellow)
		fmt.Fprintln(out)
		yellow.Fprintf(out, "Warning: %s\n", strings.Join(warnings, ", "))
		yellow.Fprintln(out, "Generation may not work without these values.")
	}
}

func promptString(reader *bufio.Reader, out io.Writer, label, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(out, "%s [%s]: ", label, defaultValue)
	} else {
		fmt.Fprintf(out, "%s: ", label)
	}

	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading input: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

// promptSecret reads the API key without echoing when stdin is a terminal,
// falling back to a plain line read otherwise.
func promptSecret(in io.Reader, reader *bufio.Reader, out io.Writer, label, defaultValue string) (string, error) {
	f, isFile := in.(*os.File)
	if !isFile || !term.IsTerminal(int(f.Fd())) {
		return promptString(reader, out, label, defaultValue)
	}

	if defaultValue != "" {
		fmt.Fprintf(out, "%s [keep current]: ", label)
	} else {
		fmt.Fprintf(out, "%s: ", label)
	}

	secret, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("reading API key: %w", err)
	}

	value := strings.TrimSpace(string(secret))
	if value == "" {
		return defaultValue, nil
	}
	return value, nil
}
