package llm

import (
	"testing"
	"time"
)

func TestTrimFences(t *testing.T) {
	t.Run("strips json code fence", func(t *testing.T) {
		got := trimFences("```json\n{\"maxPrice\": 100}\n```")
		if got != `{"maxPrice": 100}` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("strips bare code fence", func(t *testing.T) {
		got := trimFences("```\n{\"maxPrice\": 100}\n```")
		if got != `{"maxPrice": 100}` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("leaves unfenced text untouched", func(t *testing.T) {
		got := trimFences(`{"maxPrice": 100}`)
		if got != `{"maxPrice": 100}` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		got := trimFences("  \n{\"a\": 1}\n  ")
		if got != `{"a": 1}` {
			t.Errorf("got %q", got)
		}
	})
}

func TestNewClient(t *testing.T) {
	t.Run("applies defaults for unset limits", func(t *testing.T) {
		c := NewClient(ClientConfig{Model: "test-model"})
		if c.maxTokens != 256 {
			t.Errorf("maxTokens = %d, want 256", c.maxTokens)
		}
		if c.timeout != 15*time.Second {
			t.Errorf("timeout = %v, want 15s", c.timeout)
		}
	})

	t.Run("keeps configured limits", func(t *testing.T) {
		c := NewClient(ClientConfig{
			Model:          "test-model",
			MaxTokens:      128,
			Timeout:        5 * time.Second,
			RequestsPerMin: 30,
		})
		if c.maxTokens != 128 {
			t.Errorf("maxTokens = %d, want 128", c.maxTokens)
		}
		if c.timeout != 5*time.Second {
			t.Errorf("timeout = %v, want 5s", c.timeout)
		}
	})
}
