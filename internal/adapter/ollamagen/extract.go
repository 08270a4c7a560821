package ollamagen

import (
	"fmt"
	"strings"
)

// cleanResponse strips reasoning blocks some models emit (e.g.
// deepseek-r1 wraps its chain of thought in <think>...</think>) and
// trims surrounding whitespace.
func cleanResponse(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if thinkStart := strings.Index(cleaned, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(cleaned, "</think>"); thinkEnd != -1 && thinkEnd > thinkStart {
			cleaned = cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):]
			cleaned = strings.TrimSpace(cleaned)
		}
	}
	return cleaned
}

// extractJSONObject extracts the outermost JSON object from an LLM
// response. Models often wrap the JSON in prose or code fences.
func extractJSONObject(raw string) (string, error) {
	cleaned := cleanResponse(raw)

	jsonStart := strings.Index(cleaned, "{")
	jsonEnd := strings.LastIndex(cleaned, "}")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd <= jsonStart {
		return "", fmt.Errorf("no JSON object found in LLM response: %s", truncate(cleaned, 200))
	}
	return cleaned[jsonStart : jsonEnd+1], nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
