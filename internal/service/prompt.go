package service

import (
	"fmt"
	"strings"

	"ideagen-backend/internal/model"
)

// Phrases substituted for absent or blank request fields.
const (
	DefaultNiche       = "a topic of your choice"
	DefaultContentType = "any content format"
	DefaultPlatform    = "any platform"
	DefaultTone        = "an engaging tone"
)

const promptTemplate = `Generate 5 creative and unique content ideas for %s about %s.

Content Type: %s
Tone: %s

For each idea, provide:
1. A catchy, specific title
2. A brief description of what the content would cover

Format each idea as:
1. [Title]
[Description]

2. [Title]
[Description]

...and so on.

Make the ideas actionable, engaging, and tailored to the platform and tone.`

// BuildPrompt renders the five-idea prompt for req.
func BuildPrompt(req model.IdeaRequest) string {
	return fmt.Sprintf(promptTemplate,
		orDefault(req.Platform, DefaultPlatform),
		orDefault(req.Niche, DefaultNiche),
		orDefault(req.ContentType, DefaultContentType),
		orDefault(req.Tone, DefaultTone),
	)
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
