package classifier

import (
	"context"
	"errors"
	"testing"

	"laptop-advisor-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	response string
	err      error
	prompt   string
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.response, s.err
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func TestClassifyFeatures(t *testing.T) {
	provider := &stubProvider{
		response: `{'gpu intensity': 'medium', 'processing speed': 'high', 'ram capacity': 'medium', 'storage capacity': 'medium', 'storage type': 'high', 'display quality': 'medium', 'display size': 'medium', 'portability': 'low', 'battery life': 'medium'}`,
	}

	cls := New(provider)
	features, err := cls.ClassifyFeatures(context.Background(), SpecSheet{
		Brand: "Asus",
		Model: "TUF Gaming F15",
		CPU:   "Intel Core i7",
		RAM:   "16GB",
	})
	require.NoError(t, err)
	require.Len(t, features, 9)
	assert.Equal(t, "high", features["processing speed"])
	assert.Equal(t, "low", features["portability"])

	assert.Contains(t, provider.prompt, "Asus")
	assert.Contains(t, provider.prompt, "TUF Gaming F15")
}

func TestClassifyFeaturesProviderError(t *testing.T) {
	cls := New(&stubProvider{err: errors.New("rate limited")})

	_, err := cls.ClassifyFeatures(context.Background(), SpecSheet{Brand: "HP"})
	assert.Error(t, err)
}

func TestClassifyFeaturesUnparsableOutput(t *testing.T) {
	cls := New(&stubProvider{response: "I think this laptop is pretty good overall."})

	_, err := cls.ClassifyFeatures(context.Background(), SpecSheet{Brand: "HP"})
	assert.Error(t, err)
}

func TestClassifyFeaturesIncompleteMap(t *testing.T) {
	cls := New(&stubProvider{response: `{'gpu intensity': 'medium'}`})

	_, err := cls.ClassifyFeatures(context.Background(), SpecSheet{Brand: "HP"})
	assert.Error(t, err)
}
