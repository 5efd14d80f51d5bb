package service

import (
	"regexp"
	"strings"

	"ideagen-backend/internal/model"
)

const defaultIdeaDescription = "Create engaging content around this topic."

var ideaHeading = regexp.MustCompile(`^(\d+)[.)]\s*(.+)`)

var tagStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
}

// ParseIdeas splits a numbered completion into ideas. A numbered line opens a
// new idea; following lines are folded into its description.
func ParseIdeas(text string) []model.Idea {
	ideas := []model.Idea{}
	var current *model.Idea

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := ideaHeading.FindStringSubmatch(line); m != nil {
			if current != nil {
				ideas = append(ideas, *current)
			}
			current = &model.Idea{Title: strings.TrimSpace(m[2])}
			continue
		}

		if current == nil {
			continue
		}
		if current.Description != "" {
			current.Description += " "
		}
		current.Description += line
	}
	if current != nil {
		ideas = append(ideas, *current)
	}

	for i := range ideas {
		ideas[i].ID = i + 1
		if ideas[i].Description == "" {
			ideas[i].Description = defaultIdeaDescription
		}
		ideas[i].Tags = tagsFromTitle(ideas[i].Title)
	}
	return ideas
}

func tagsFromTitle(title string) []string {
	tags := make([]string, 0, 3)
	for _, word := range strings.Split(strings.ToLower(title), " ") {
		runes := []rune(word)
		if len(runes) <= 3 {
			continue
		}
		if _, stop := tagStopWords[word]; stop {
			continue
		}
		tags = append(tags, strings.ToUpper(string(runes[0]))+string(runes[1:]))
		if len(tags) == 3 {
			break
		}
	}
	return tags
}
