package changelog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chng-cli/chng/common"
	"github.com/chng-cli/chng/llm"
	"github.com/chng-cli/chng/logger"
	"github.com/chng-cli/chng/prompt"
)

// ErrEmptyDiff is returned when the input file holds no content to summarize.
var ErrEmptyDiff = errors.New("diff file is empty")

// NotFoundError indicates the diff file could not be read.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file '%s' not found", e.Path)
}

// Generator turns a diff file into a changelog entry on disk.
type Generator struct {
	client   llm.LLM
	settings common.Settings
}

// NewGenerator creates a generator backed by the given LLM client.
func NewGenerator(client llm.LLM, settings common.Settings) *Generator {
	return &Generator{
		client:   client,
		settings: settings,
	}
}

// OutputPath derives the changelog filename from the input path: the
// basename with its extension stripped, written to the working directory.
// feature.diff becomes changelog-feature.md.
func OutputPath(inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return "changelog-" + stem + ".md"
}

// Generate reads the diff at path, asks the model for a changelog entry and
// writes it next to the caller. It returns the output path on success.
// Nothing is written unless the whole request/response cycle succeeded.
func (g *Generator) Generate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &NotFoundError{Path: path}
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	diff := strings.TrimSpace(string(data))
	if diff == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyDiff, path)
	}

	logger.Debugf("Read %d bytes of diff from %s", len(diff), path)

	resp := g.client.Prompt(llm.Request{
		SystemPrompt: prompt.GetSystemPrompt(g.settings),
		UserPrompt:   prompt.GetChangelogPrompt(diff),
	})
	if resp.Error != nil {
		return "", resp.Error
	}

	outputPath := OutputPath(path)
	if err := os.WriteFile(outputPath, []byte(resp.Content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outputPath, err)
	}

	logger.Debugf("Wrote changelog to %s", outputPath)
	return outputPath, nil
}
