package services

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateForPromptKeepsShortStrings(t *testing.T) {
	assert.Equal(t, "short", truncateForPrompt("short", 500))
}

func TestTruncateForPromptNeverSplitsRunes(t *testing.T) {
	// 3 bytes per rune, so a 500-byte cut would land mid-rune
	content := strings.Repeat("好", 200)
	require.Equal(t, 600, len(content))

	out := truncateForPrompt(content, 500)
	assert.True(t, utf8.ValidString(out))
	assert.LessOrEqual(t, len(out), 500)
	assert.Equal(t, 498, len(out))
}

func TestAIServiceUnavailableWithoutKey(t *testing.T) {
	svc, err := NewAIService("", "gpt-4-turbo-preview")
	require.NoError(t, err)
	assert.False(t, svc.Available())

	_, err = svc.GenerateProductDescription(context.Background(), "Headphones", nil, "Electronics")
	assert.ErrorIs(t, err, ErrAIUnavailable)

	_, err = svc.SummarizeReviews(context.Background(), nil)
	assert.ErrorIs(t, err, ErrAIUnavailable)
}
