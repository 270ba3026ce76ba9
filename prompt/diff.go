package prompt

func GetChangelogPrompt(diffContent string) string {
	return `Given this git diff, create a concise, well-formatted changelog entry in markdown format.

Diff:
` + "```\n" + diffContent + "\n```" + `

Generate a changelog entry:`
}
