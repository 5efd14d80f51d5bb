package model

// GenerateResponse is the envelope for every /generate reply.
type GenerateResponse struct {
	Success bool   `json:"success"`
	Ideas   string `json:"ideas,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Idea is one entry parsed out of the provider's numbered list.
type Idea struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// ParsedResponse is the /generate/parsed success envelope. Items is always
// present, empty when the text has no numbered lines. Failures use
// GenerateResponse.
type ParsedResponse struct {
	Success bool   `json:"success"`
	Ideas   string `json:"ideas"`
	Items   []Idea `json:"items"`
}
