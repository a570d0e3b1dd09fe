package assistant

import (
	"context"
	"fmt"
)

// MockAssistant is used in development and tests; it echoes the question
// instead of calling an API.
type MockAssistant struct{}

func (MockAssistant) Ask(ctx context.Context, question string, contextPayload any) (string, error) {
	return fmt.Sprintf("mock answer for: %s", question), nil
}
