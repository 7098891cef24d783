package assessment

import "context"

// Transcriber converts captured audio to text. It is an external, fallible
// collaborator: a failure leaves the item unanswered and is never fatal to
// the session.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Speaker plays prompt text aloud, fire-and-forget. Playing reports whether
// playback is in progress so the caller can avoid overlapping prompts.
type Speaker interface {
	Speak(text string)
	Playing() bool
}
