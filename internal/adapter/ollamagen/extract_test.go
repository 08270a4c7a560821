package ollamagen

import (
	"strings"
	"testing"
)

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"surrounding whitespace", "  \n{\"a\":1}\n ", `{"a":1}`},
		{"think block stripped", "<think>reasoning here</think>\n{\"a\":1}", `{"a":1}`},
		{"think block in the middle", "prefix <think>x</think> suffix", "prefix  suffix"},
		{"unterminated think block kept", "<think>never closed {\"a\":1}", "<think>never closed {\"a\":1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanResponse(tt.in); got != tt.want {
				t.Errorf("cleanResponse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	t.Run("plain object", func(t *testing.T) {
		got, err := extractJSONObject(`{"topic":"Go"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != `{"topic":"Go"}` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("wrapped in prose and code fences", func(t *testing.T) {
		raw := "Sure! Here is the JSON:\n```json\n{\"topic\":\"Go\"}\n```\nHope that helps."
		got, err := extractJSONObject(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != `{"topic":"Go"}` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("nested objects keep outermost braces", func(t *testing.T) {
		raw := `noise {"a":{"b":2}} trailing`
		got, err := extractJSONObject(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != `{"a":{"b":2}}` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("reasoning block before the object", func(t *testing.T) {
		raw := "<think>{not the answer}</think>{\"a\":1}"
		got, err := extractJSONObject(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != `{"a":1}` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("no object", func(t *testing.T) {
		if _, err := extractJSONObject("the model refused to answer"); err == nil {
			t.Error("expected error for response without JSON")
		}
	})

	t.Run("reversed braces", func(t *testing.T) {
		if _, err := extractJSONObject("}{"); err == nil {
			t.Error("expected error when closing brace precedes opening brace")
		}
	})
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	long := strings.Repeat("a", 20)
	if got := truncate(long, 10); got != strings.Repeat("a", 10)+"..." {
		t.Errorf("got %q", got)
	}
}
