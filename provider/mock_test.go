package provider_test

import (
	"context"
	"errors"
	"testing"

	"github.com/randalmurphal/promptpager/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGenerator_FixedResponse(t *testing.T) {
	mock := provider.NewMockGenerator("Hello, world!")

	text, err := mock.Generate(context.Background(), "m", "Hi")

	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", text)
	assert.Equal(t, "mock", mock.Provider())
}

func TestMockGenerator_SequentialResponses(t *testing.T) {
	mock := provider.NewMockGenerator("").WithResponses("first", "second")

	for _, want := range []string{"first", "second", "first"} {
		text, err := mock.Generate(context.Background(), "", "p")
		require.NoError(t, err)
		assert.Equal(t, want, text)
	}
}

func TestMockGenerator_WithError(t *testing.T) {
	expectedErr := errors.New("test error")
	mock := provider.NewMockGenerator("").WithError(expectedErr)

	_, err := mock.Generate(context.Background(), "", "p")
	assert.Equal(t, expectedErr, err)
	assert.Equal(t, 1, mock.CallCount())
}

func TestMockGenerator_WithGenerateFunc(t *testing.T) {
	mock := provider.NewMockGenerator("ignored").WithGenerateFunc(
		func(ctx context.Context, model, prompt string) (string, error) {
			return model + ":" + prompt, nil
		})

	text, err := mock.Generate(context.Background(), "gemini-x", "ping")
	require.NoError(t, err)
	assert.Equal(t, "gemini-x:ping", text)
}

func TestMockGenerator_ContextCancelled(t *testing.T) {
	mock := provider.NewMockGenerator("never")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mock.Generate(ctx, "", "p")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMockGenerator_CallTracking(t *testing.T) {
	mock := provider.NewMockGenerator("response")
	assert.Nil(t, mock.LastCall())

	_, _ = mock.Generate(context.Background(), "model-a", "first prompt")
	_, _ = mock.Generate(context.Background(), "model-b", "second prompt")

	assert.Equal(t, 2, mock.CallCount())
	last := mock.LastCall()
	require.NotNil(t, last)
	assert.Equal(t, provider.GenerateCall{Model: "model-b", Prompt: "second prompt"}, *last)

	mock.Reset()
	assert.Equal(t, 0, mock.CallCount())
}

func TestMockGenerator_ImplementsGenerator(t *testing.T) {
	var _ provider.Generator = (*provider.MockGenerator)(nil)
}
