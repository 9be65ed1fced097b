package feedback

import "time"

// Config holds tutor text generation settings.
type Config struct {
	// Timeout bounds each provider call. On expiry the fallback is used.
	// Zero or negative means DefaultConfig's timeout.
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for tutor text.
func DefaultConfig() Config {
	return Config{
		Timeout:     8 * time.Second,
		MaxTokens:   200,
		Temperature: 0.7,
	}
}
