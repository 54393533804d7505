package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeoutMiddlewareAllowsFastRequests(t *testing.T) {
	stub := &stubCoreLLM{model: "test-model", response: "7"}
	wrapped := TimeoutMiddleware(time.Second)(stub)

	response, _, _, err := wrapped.DoRequest(context.Background(), "prompt", nil)
	require.NoError(t, err)
	assert.Equal(t, "7", response)
}

func TestTimeoutMiddlewareCancelsSlowRequests(t *testing.T) {
	stub := &stubCoreLLM{model: "test-model", response: "7", delay: 200 * time.Millisecond}
	wrapped := TimeoutMiddleware(10 * time.Millisecond)(stub)

	_, _, _, err := wrapped.DoRequest(context.Background(), "prompt", nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTimeoutMiddlewareDelegatesModel(t *testing.T) {
	stub := &stubCoreLLM{model: "test-model"}
	wrapped := TimeoutMiddleware(time.Second)(stub)

	assert.Equal(t, "test-model", wrapped.GetModel())
	wrapped.SetModel("other-model")
	assert.Equal(t, "other-model", stub.GetModel())
}
