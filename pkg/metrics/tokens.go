package metrics

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

const fallbackEncoding = "cl100k_base"

// TokenCounter estimates prompt sizes before they are sent to the chat provider.
type TokenCounter struct {
	encoding *tiktoken.Tiktoken
}

// NewTokenCounter loads the BPE ranks for model, falling back to cl100k_base for
// models tiktoken does not know yet.
func NewTokenCounter(model string) (*TokenCounter, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding(fallbackEncoding)
		if err != nil {
			return nil, fmt.Errorf("load tiktoken encoding: %w", err)
		}
	}
	return &TokenCounter{encoding: enc}, nil
}

// Count returns the summed token count of texts. A nil counter counts nothing.
func (c *TokenCounter) Count(texts ...string) int {
	if c == nil || c.encoding == nil {
		return 0
	}
	total := 0
	for _, text := range texts {
		total += len(c.encoding.Encode(text, nil, nil))
	}
	return total
}
