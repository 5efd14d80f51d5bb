package model

// IdeaRequest is the body of POST /generate. Every field is optional.
type IdeaRequest struct {
	Niche       string `json:"niche"`
	ContentType string `json:"content_type"`
	Platform    string `json:"platform"`
	Tone        string `json:"tone"`
}
