package models

// SubscribeRequest is the body of a newsletter signup
type SubscribeRequest struct {
	Email string `json:"email"`
}

// NewsletterStatus reports the transient signup state. Submitted flips to
// true right after a successful signup and clears again after a fixed delay.
type NewsletterStatus struct {
	Submitted bool   `json:"submitted"`
	Pending   string `json:"pending,omitempty"`
}
