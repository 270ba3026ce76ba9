package prompt

import (
	"strings"
	"testing"

	"github.com/chng-cli/chng/common"
)

func TestGetSystemPromptDefaults(t *testing.T) {
	got := GetSystemPrompt(common.WithDefaultSettings())

	if !strings.Contains(got, "changelog") {
		t.Error("Expected system prompt to mention changelogs")
	}
	if strings.Contains(got, "en-US") {
		t.Error("Default language should not add a language instruction")
	}
}

func TestGetSystemPromptLanguage(t *testing.T) {
	settings := common.Settings{Language: "de-DE"}

	got := GetSystemPrompt(settings)
	if !strings.Contains(got, "Use de-DE language.") {
		t.Errorf("Expected language instruction in prompt, got %q", got)
	}
}

func TestGetSystemPromptInstructions(t *testing.T) {
	settings := common.Settings{Instructions: "Always mention ticket numbers."}

	got := GetSystemPrompt(settings)
	if !strings.Contains(got, "Always mention ticket numbers.") {
		t.Errorf("Expected custom instructions in prompt, got %q", got)
	}
}

func TestGetChangelogPromptEmbedsDiff(t *testing.T) {
	diff := "diff --git a/main.go b/main.go\n+fmt.Println(\"hello\")"

	got := GetChangelogPrompt(diff)
	if !strings.Contains(got, diff) {
		t.Error("Expected diff content to be embedded in the prompt")
	}
	if !strings.Contains(got, "```") {
		t.Error("Expected diff to be fenced in a code block")
	}
}
