package prompt

import "strings"

// CodeSnippetPlaceholder is the single substitution point of TestGenerationTemplate.
const CodeSnippetPlaceholder = "{code_snippet}"

// TestGenerationTemplate asks the model for pytest tests of the snippet. Only code is expected back.
const TestGenerationTemplate = `You are an expert in Python unit testing with pytest.

Analyze the following Python code and generate comprehensive unit tests:
- Cover success cases, error conditions, and edge cases
- Use pytest framework with appropriate assertions
- Include brief comments to explain each test case
- Return only valid Python code without any additional text

Code to test:
` + CodeSnippetPlaceholder + `

Generated tests:
`

// GetTestGenerationPrompt renders the template for codeSnippet. The snippet is
// inserted verbatim.
func GetTestGenerationPrompt(codeSnippet string) string {
	return strings.Replace(TestGenerationTemplate, CodeSnippetPlaceholder, codeSnippet, 1)
}
