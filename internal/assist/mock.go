package assist

import (
	"context"
	"strings"
	"time"
)

// MockGenerator returns canned replies for development and tests.
// Reply, when set, decides the answer for each prompt.
type MockGenerator struct {
	Delay time.Duration
	Reply func(prompt string) (string, error)
}

func (m *MockGenerator) Name() string {
	return "Mock (dev)"
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if m.Reply != nil {
		return m.Reply(prompt)
	}
	if strings.HasPrefix(prompt, "Enhance this text") {
		return "This text has been polished for clarity.", nil
	}
	return "- Tighten the opening sentence\n- Check subject-verb agreement\n- Add a concrete example\n", nil
}
