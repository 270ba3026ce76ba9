package prompt

import (
	"fmt"

	"github.com/chng-cli/chng/common"
)

// GetSystemPrompt builds the instruction the model receives before the diff.
func GetSystemPrompt(settings common.Settings) string {
	basePrompt := `You are an expert software developer writing changelog entries.
- Use clear, user-facing language.
- Group related changes together.
- Use bullet points for multiple changes.
- Follow conventional changelog format (Added, Changed, Fixed, Removed, etc.).
- Respond with the markdown changelog entry only, don't wrap it in a code block.`

	if settings.Instructions != "" {
		basePrompt += "\n" + settings.Instructions
	}

	if settings.Language != "" && settings.Language != "en-US" {
		basePrompt += fmt.Sprintf("\n- Use %s language.", settings.Language)
	}

	return basePrompt
}
