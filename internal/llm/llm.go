package llm

import "context"

// Turn is one prior exchange in a conversation. Role follows the Gemini
// convention: "user" for the caller, "model" for the assistant.
type Turn struct {
	Role string
	Text string
}

// Generator is the remote conversational model consumed by the chat and
// translation paths. Implementations must honour context cancellation.
type Generator interface {
	// Generate sends a single prompt and returns the model's text reply.
	Generate(ctx context.Context, prompt string) (string, error)

	// Chat sends a message with prior history and returns the reply.
	Chat(ctx context.Context, history []Turn, message string) (string, error)
}
