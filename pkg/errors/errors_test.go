package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := Wrap(CodeProviderError, "summarization failed", cause)

	require.EqualError(t, err, "summarization failed: connection reset")
	require.ErrorIs(t, err, cause)
	require.True(t, IsCode(err, CodeProviderError))
	require.False(t, IsCode(err, CodeLLMError))
}

func TestCodeOf(t *testing.T) {
	require.Equal(t, "", CodeOf(nil))
	require.Equal(t, "", CodeOf(stderrors.New("plain")))

	wrapped := Wrap(CodeLLMError, "chat failed", nil)
	require.EqualError(t, wrapped, "chat failed")
	require.Equal(t, CodeLLMError, CodeOf(wrapped))
}
