package service

import (
	"strings"
	"testing"

	"ideagen-backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_AllFields(t *testing.T) {
	prompt := BuildPrompt(model.IdeaRequest{
		Niche:       "sourdough baking",
		ContentType: "video",
		Platform:    "YouTube",
		Tone:        "humorous",
	})

	assert.True(t, strings.HasPrefix(prompt,
		"Generate 5 creative and unique content ideas for YouTube about sourdough baking.\n\nContent Type: video\nTone: humorous\n"))
	assert.Contains(t, prompt, "Format each idea as:\n1. [Title]\n[Description]\n\n2. [Title]\n[Description]\n\n...and so on.")
	assert.True(t, strings.HasSuffix(prompt, "tailored to the platform and tone."))
}

func TestBuildPrompt_AbsentFieldsUseDefaults(t *testing.T) {
	prompt := BuildPrompt(model.IdeaRequest{Niche: "   ", Tone: "calm"})

	assert.Contains(t, prompt, "ideas for "+DefaultPlatform+" about "+DefaultNiche+".")
	assert.Contains(t, prompt, "Content Type: "+DefaultContentType+"\n")
	assert.Contains(t, prompt, "Tone: calm\n")
	assert.NotContains(t, prompt, "None")
	assert.NotContains(t, prompt, "%!")
}

func TestBuildPrompt_TrimsWhitespace(t *testing.T) {
	prompt := BuildPrompt(model.IdeaRequest{Platform: "  TikTok\n"})
	assert.Contains(t, prompt, "ideas for TikTok about")
}
