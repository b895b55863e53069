package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespond(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantPrefix    string
		wantSuggested bool
	}{
		{"bottle keyword", "I need a bottle", "Great! For a sustainable water bottle", true},
		{"water keyword", "I want a water bottle", "Great! For a sustainable water bottle", true},
		{"water alone", "something for WATER", "Great! For a sustainable water bottle", true},
		{"container keyword", "a food container please", "Perfect choice! For food containers", false},
		{"food keyword", "Food storage", "Perfect choice! For food containers", false},
		{"cup keyword", "a cup", "Excellent! For a reusable coffee cup", false},
		{"coffee keyword", "Coffee to go", "Excellent! For a reusable coffee cup", false},
		{"bottle wins over cup", "a cup or a bottle", "Great! For a sustainable water bottle", true},
		{"container wins over coffee", "coffee container", "Perfect choice! For food containers", false},
		{"no keyword", "hello there", "I understand you're interested", false},
		{"empty", "", "I understand you're interested", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := Respond(tt.input)
			assert.True(t, strings.HasPrefix(reply.Content, tt.wantPrefix), "got %q", reply.Content)
			if tt.wantSuggested {
				require.NotNil(t, reply.Suggestion)
				assert.Equal(t, 500, reply.Suggestion.Capacity)
			} else {
				assert.Nil(t, reply.Suggestion)
			}
		})
	}
}

func TestRespondBottleSuggestion(t *testing.T) {
	reply := Respond("I want a water bottle")

	require.NotNil(t, reply.Suggestion)
	assert.Equal(t, []string{"rPET", "Tritan", "Stainless Steel"}, reply.Suggestion.Materials)
	assert.Equal(t, Dimensions{Height: 220, Width: 70, Depth: 70}, reply.Suggestion.Dimensions)
	assert.Equal(t, "A", reply.Suggestion.EcoScore)
}

func TestRespondSuggestionNotShared(t *testing.T) {
	first := Respond("bottle")
	first.Suggestion.Materials[0] = "changed"

	second := Respond("bottle")
	assert.Equal(t, "rPET", second.Suggestion.Materials[0])
}
